package service

import "time"

// Wire format for all calendar dates. DTO validation enforces the layout
// before these helpers run, so parse errors collapse to the zero time only
// for inputs that already failed validation.
const dateLayout = "2006-01-02"

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseDate(*s)
	return &t
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
