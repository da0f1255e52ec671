// Package norsk validates and formats Norwegian identifiers and values that
// appear on invoices: organization numbers, bank account numbers, personal
// numbers, VAT numbers, KID payment references, phone numbers, postal codes,
// dates, and currency amounts.
//
// The check-digit validators implement the standard modulus 11 scheme used
// by Brønnøysundregistrene and Norwegian banks, and the modulus 10 (Luhn)
// scheme used for KID references. Formatting follows Norwegian convention:
// space-separated thousands groups and a comma decimal separator.
package norsk
