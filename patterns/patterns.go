// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Package patterns exposes named regex source strings for a handful of
// common data shapes: illustrative, not exhaustive. These are plain
// string constants; stringgen never imports meaning from the names.
package patterns

// UUIDv4 matches a version-4 UUID in canonical hyphenated lowercase-hex
// form, with the variant nibble fixed to 8-b per RFC 4122 §4.4.
const UUIDv4 = `[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}`

// IPv4 matches a dotted-quad address with each octet in 0-255.
const IPv4 = `(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])\.` +
	`(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])\.` +
	`(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])\.` +
	`(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])`

// SemVer matches a MAJOR.MINOR.PATCH version, with an optional
// hyphen-delimited pre-release tag. It does not validate build metadata.
const SemVer = `[0-9]+\.[0-9]+\.[0-9]+(-[0-9a-z]+)?`

// PhoneE164 matches an E.164-shaped phone number: a leading '+', 1-3
// country-code digits, then 4-12 further digits.
const PhoneE164 = `\+[1-9][0-9]{0,2}[0-9]{4,12}`

// HexColor matches a 6-digit hex color with a leading '#'.
const HexColor = `#[0-9a-fA-F]{6}`

// ISODate matches a calendar date in YYYY-MM-DD form. It does not
// validate day-of-month against month length.
const ISODate = `[0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])`
