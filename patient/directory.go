/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patient

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Status represents the load state of the directory.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusEmpty   Status = "empty"
	StatusFailed  Status = "failed"
)

// SelectionHandler is called after the selected patient changes.
type SelectionHandler func(selected Patient)

// idNamespace scopes patient identifiers generated on load.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/humaidq/vitalboard/patient"))

// Directory owns the fetched patient list and the single selected patient.
type Directory struct {
	mu       sync.RWMutex
	status   Status
	err      error
	patients []Patient
	selected int
	handlers []SelectionHandler
}

// NewDirectory returns an empty directory waiting for its first load.
func NewDirectory() *Directory {
	return &Directory{
		status:   StatusLoading,
		selected: -1,
	}
}

// Load replaces the whole collection. The first patient becomes the
// selection; an empty collection leaves nothing selected.
func (d *Directory) Load(patients []Patient) {
	loaded := make([]Patient, len(patients))
	for i, p := range patients {
		if p.ID == "" {
			p.ID = patientID(i, p.Name)
		}
		loaded[i] = p
	}

	d.mu.Lock()
	d.patients = loaded
	d.err = nil
	if len(loaded) == 0 {
		d.status = StatusEmpty
		d.selected = -1
		d.mu.Unlock()
		return
	}
	d.status = StatusReady
	d.selected = 0
	first := loaded[0]
	handlers := d.handlers
	d.mu.Unlock()

	notify(handlers, first)
}

// Fail records that the collection could not be fetched.
func (d *Directory) Fail(err error) {
	if err == nil {
		err = errLoadFailed
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.status = StatusFailed
	d.err = err
	d.patients = nil
	d.selected = -1
}

// Select makes p the selected patient. A patient without an identifier is
// matched by name, first match wins. Patients that are not part of the
// current collection are ignored.
func (d *Directory) Select(p Patient) bool {
	if p.ID != "" {
		return d.SelectByID(p.ID)
	}

	d.mu.Lock()
	return d.selectLocked(d.indexOfName(p.Name))
}

// SelectByID selects the patient with the given identifier. Unknown
// identifiers are ignored and leave the selection unchanged.
func (d *Directory) SelectByID(id string) bool {
	d.mu.Lock()
	return d.selectLocked(d.indexOf(id))
}

// selectLocked must be called with d.mu held; it releases the lock.
func (d *Directory) selectLocked(idx int) bool {
	if idx < 0 {
		d.mu.Unlock()
		return false
	}
	d.selected = idx
	selected := d.patients[idx]
	handlers := d.handlers
	d.mu.Unlock()

	notify(handlers, selected)

	return true
}

// Current returns the selected patient, if any.
func (d *Directory) Current() (Patient, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.selected < 0 || d.selected >= len(d.patients) {
		return Patient{}, false
	}
	return d.patients[d.selected], true
}

// Patients returns a copy of the loaded collection in delivery order.
func (d *Directory) Patients() []Patient {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Patient, len(d.patients))
	copy(out, d.patients)
	return out
}

// Find returns the patient with the given identifier.
func (d *Directory) Find(id string) (Patient, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	idx := d.indexOf(id)
	if idx < 0 {
		return Patient{}, false
	}
	return d.patients[idx], true
}

// FindByName returns the first patient whose name matches exactly.
func (d *Directory) FindByName(name string) (Patient, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	idx := d.indexOfName(name)
	if idx < 0 {
		return Patient{}, false
	}
	return d.patients[idx], true
}

// Status returns the current load state.
func (d *Directory) Status() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// Err returns the error recorded by Fail, if any.
func (d *Directory) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

// OnSelect registers a handler for selection changes.
func (d *Directory) OnSelect(handler SelectionHandler) {
	if handler == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// handlers is copied by readers, so never append in place.
	handlers := make([]SelectionHandler, len(d.handlers), len(d.handlers)+1)
	copy(handlers, d.handlers)
	d.handlers = append(handlers, handler)
}

// indexOf must be called with d.mu held.
func (d *Directory) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, p := range d.patients {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// indexOfName must be called with d.mu held.
func (d *Directory) indexOfName(name string) int {
	for i, p := range d.patients {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func notify(handlers []SelectionHandler, selected Patient) {
	for _, h := range handlers {
		h(selected)
	}
}

func patientID(position int, name string) string {
	return uuid.NewSHA1(idNamespace, []byte(strconv.Itoa(position)+"/"+name)).String()
}
