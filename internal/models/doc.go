// Package models defines the domain models for Hesap Paylaş.
//
// The settlement core (internal/ledger, internal/settlement) only depends on
// Participant and Classification; the remaining types are the persisted shape
// of users, groups, orders and stored settlements.
//
// All money fields use decimal.Decimal. Rounding to currency precision
// happens at the presentation boundary (JSON DTOs, summaries), never inside
// the engine.
package models
