/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/flamego/flamego"
	"github.com/skip2/go-qrcode"

	"github.com/humaidq/vitalboard/patient"
)

const contactQRSize = 160

// ContactCard serves the patient's contact details as a vCard download.
func ContactCard(c flamego.Context, dir *patient.Directory) {
	id := c.Param("id")

	p, ok := dir.Find(id)
	if !ok {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
		return
	}

	card := buildVCard(p)

	w := c.ResponseWriter()
	w.Header().Set("Content-Type", "text/vcard; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", vcardFileName(p.Name)))

	if err := vcard.NewEncoder(w).Encode(card); err != nil {
		logger.Error("failed to encode contact card", "patient_id", id, "error", err)
	}
}

func buildVCard(p patient.Patient) vcard.Card {
	card := make(vcard.Card)

	card.SetValue(vcard.FieldVersion, "4.0")
	card.SetValue(vcard.FieldUID, "urn:uuid:"+p.ID)
	card.SetValue(vcard.FieldFormattedName, p.Name)

	given, family := splitName(p.Name)
	card.AddName(&vcard.Name{
		GivenName:  given,
		FamilyName: family,
	})

	switch p.Gender {
	case "Female":
		card.SetGender(vcard.SexFemale, "")
	case "Male":
		card.SetGender(vcard.SexMale, "")
	case "":
	default:
		card.SetGender(vcard.SexOther, p.Gender)
	}

	if dob, ok := patient.ParseDate(p.DateOfBirth); ok {
		card.SetValue(vcard.FieldBirthday, dob.Format("20060102"))
	}

	if p.PhoneNumber != "" {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  p.PhoneNumber,
			Params: vcard.Params{vcard.ParamType: []string{"cell"}},
		})
	}

	if photo := safeImageURL(p.ProfilePicture); photo != "" {
		card.SetValue(vcard.FieldPhoto, string(photo))
	}

	var notes []string
	if p.EmergencyContact != "" {
		notes = append(notes, "Emergency contact: "+p.EmergencyContact)
	}
	if p.InsuranceType != "" {
		notes = append(notes, "Insurance provider: "+p.InsuranceType)
	}
	if len(notes) > 0 {
		card.SetValue(vcard.FieldNote, strings.Join(notes, "\n"))
	}

	vcard.ToV4(card)

	return card
}

// splitName treats the last word as the family name.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}

func vcardFileName(name string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	slug = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, slug)
	if slug == "" {
		slug = "patient"
	}
	return slug + ".vcf"
}

// contactQRCode encodes a tel: link for the phone number as a PNG data URI.
func contactQRCode(phone string) (string, error) {
	tel := patient.TelURI(phone)
	if tel == "" {
		return "", errNoPhoneDigits
	}

	png, err := qrcode.Encode(tel, qrcode.Medium, contactQRSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode contact QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
