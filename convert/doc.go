// Package convert moves documents between JSON, TOON and CSV, and
// measures what the move costs or saves.
package convert
