// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// MutationOp is the kind of write a [Mutation] performs.
type MutationOp string

const (
	OpCreate MutationOp = "create"
	OpUpdate MutationOp = "update"
	OpDelete MutationOp = "delete"
)

// Valid reports whether op is a known operation.
func (op MutationOp) Valid() bool {
	return op == OpCreate || op == OpUpdate || op == OpDelete
}

// Mutation is one client write against a user-owned record.
//
// Creates carry a client-generated RecordID so that a replayed create is
// recognised as a duplicate by the server instead of producing a second row.
type Mutation struct {
	// ID is the client-generated id of the mutation itself.
	ID       string          `json:"id"`
	Entity   Table           `json:"entity"`
	Op       MutationOp      `json:"op"`
	RecordID string          `json:"record_id"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// DecodeRecord unmarshals the payload of m into the typed record of its
// entity table.
func (m Mutation) DecodeRecord() (Record, error) {
	return DecodeRecord(m.Entity, m.Payload)
}

// DecodeRecord unmarshals raw into the record type of table t.
func DecodeRecord(t Table, raw json.RawMessage) (Record, error) {
	switch t {
	case TableSettings:
		return decodeAs[Settings](raw)
	case TableVehicles:
		return decodeAs[Vehicle](raw)
	case TableFinancing:
		return decodeAs[Financing](raw)
	case TableInsurance:
		return decodeAs[Insurance](raw)
	case TableExpenses:
		return decodeAs[Expense](raw)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTable, t)
}

func decodeAs[T Record](raw json.RawMessage) (Record, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// QueueState is the lifecycle state of an [OfflineMutation].
type QueueState string

const (
	// QueuePending mutations wait for a server acknowledgement.
	QueuePending QueueState = "pending"
	// QueueSynced mutations were acknowledged and are due for removal.
	QueueSynced QueueState = "synced"
)

// OfflineMutation is a [Mutation] held in the client queue while the server
// is unreachable.
type OfflineMutation struct {
	// Seq is the local insertion sequence and defines replay order.
	Seq        int64      `json:"seq"`
	LocalID    string     `json:"local_id"`
	Mutation   Mutation   `json:"mutation"`
	EnqueuedAt time.Time  `json:"enqueued_at"`
	State      QueueState `json:"state"`
	Attempts   int        `json:"attempts"`
	LastError  string     `json:"last_error,omitempty"`
}

// ReplayReport summarises one replay pass over the offline queue.
type ReplayReport struct {
	Attempted int `json:"attempted"`
	Synced    int `json:"synced"`
	Remaining int `json:"remaining"`
	// StoppedAt is the local id of the mutation that failed, if any.
	StoppedAt string `json:"stopped_at,omitempty"`
}

// SubmitResult tells the caller whether a write reached the server or was
// queued for later.
type SubmitResult struct {
	Queued  bool   `json:"queued"`
	LocalID string `json:"local_id,omitempty"`
}
