// Package ports defines the contracts between the ordering core and its
// infrastructure: order persistence, transaction boundaries, identifier
// generation and change notifications.
package ports
