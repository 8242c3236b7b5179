/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patient

import "errors"

var (
	errLoadFailed = errors.New("patient data failed to load")
)
