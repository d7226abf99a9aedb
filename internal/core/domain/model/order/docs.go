// Package order contains the order aggregate and its status lifecycle model:
// the status set and transition graph, the role permission map, the typed
// transition errors, and the immutable audit records (status flow entries and
// the broader order history log) written alongside every accepted transition.
package order
