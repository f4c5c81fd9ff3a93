package models

// Task is a reusable pool entry that can be scheduled into a day. It never
// expires; it only disappears through explicit deletion.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	DurationMin int      `json:"duration_min"`  // default duration when planned
	Due         string   `json:"due,omitempty"` // YYYY-MM-DD format
	Tags        []string `json:"tags,omitempty"`
}
