// Package models defines the core domain models for RoomieSync.
//
// # Collections
//
// The household state is made of five record collections:
//   - Roommate: a household member profile (admin or member)
//   - Expense: an append-only ledger entry (spending or a pool contribution)
//   - Task: a chore assigned to one roommate
//   - ChatMessage: an append-only feed entry, optionally carrying a TaskSnapshot
//   - Budgets: per-category allocations and labels, saved as a unit
//
// Session holds the locally stored current user and is never sent to a remote backend.
//
// # Design Principles
//
//  1. Relationships use ID strings, never pointers (Expense.PaidBy, Task.AssignedTo)
//  2. JSON field names follow the wire format shared by the local store, the REST
//     service and backup files (camelCase)
//  3. Snapshots are values: a TaskSnapshot inside a message never changes after send
package models
