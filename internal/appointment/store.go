/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package appointment

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
)

// Appointment is a booked slot between a patient and a practitioner.
type Appointment struct {
	ID           string    `json:"id"`
	Patient      string    `json:"patient"`
	Practitioner string    `json:"practitioner"`
	StartsAt     time.Time `json:"starts_at"`
}

// Store persists appointments.
//
// Missing appointments are reported as KindNotFound errors with code
// INF_DB_NOTFOUND.
type Store interface {
	FindByID(ctx context.Context, id string) (Appointment, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore is a Store kept in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Appointment
}

// NewMemoryStore returns a store seeded with the given appointments.
func NewMemoryStore(seed ...Appointment) *MemoryStore {
	s := &MemoryStore{items: make(map[string]Appointment, len(seed))}
	for _, a := range seed {
		s.items[a.ID] = a
	}
	return s
}

// Add inserts or replaces a.
func (s *MemoryStore) Add(a Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[a.ID] = a
}

// FindByID implements Store.
func (s *MemoryStore) FindByID(ctx context.Context, id string) (Appointment, error) {
	if err := ctx.Err(); err != nil {
		return Appointment{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.items[id]
	if !ok {
		return Appointment{}, notFound(id)
	}
	return a, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return notFound(id)
	}
	delete(s.items, id)
	return nil
}

func notFound(id string) *dcore.Error {
	return dcore.NotFound(code.InfDBNotFound, "appointment row not found",
		dcore.WithDetailOption("appointment_id", id))
}
