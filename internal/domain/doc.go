// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/costbearer,
// domain/expensetype, domain/expenseentry). This root package holds the
// sentinel errors and the application Error every layer above the entities
// speaks in.
package domain
