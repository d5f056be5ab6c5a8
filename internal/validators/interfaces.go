// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of input before it reaches a store.
// Validators never decode encrypted payloads.
package validators

import "context"

// Validator validates a value of type T. Passing field names restricts the
// check to those fields; with none, every field is checked.
type Validator[T any] interface {
	Validate(ctx context.Context, value T, fields ...string) error
}
