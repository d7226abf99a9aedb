// Package services contains domain services: operations that span the order
// aggregate and its audit records but belong to the domain, not to any single
// entity. Services here never manage transactions; they write through
// repositories bound to the caller's unit of work.
package services
