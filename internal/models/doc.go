// Package models defines the core domain models for the receipt splitter.
//
// # Models
//
//   - Receipt: a scanned bill owned by one user, optionally shared by token
//   - ReceiptItem: a priced line on a receipt
//   - Participant: a person splitting the receipt (not necessarily a user)
//   - Assignment: links an item to a participant with a share type
//   - Adjustment: a bill-level amount such as tax, tip or a discount
//   - User: a registered account that owns receipts
//
// # Design Principles
//
// 1. **Relationships by ID**: models reference each other with ID strings,
// never pointers.
// 2. **Storage shape**: fields mirror the columns in the sqlite schema;
// nullable columns use pointers.
// 3. **Allocation is derived**: owed amounts are never stored. They are
// recomputed from a Snapshot by the allocation package on every read.
package models
