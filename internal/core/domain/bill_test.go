package domain_test

import (
	"testing"
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNextOccurrence(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	tests := []struct {
		name   string
		dueDay int
		now    time.Time
		want   time.Time
	}{
		{
			name:   "due day later this month",
			dueDay: 15,
			now:    time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
			want:   time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "due day already passed rolls to next month",
			dueDay: 5,
			now:    time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
			want:   time.Date(2026, time.April, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "due today rolls to next month",
			dueDay: 10,
			now:    time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			want:   time.Date(2026, time.April, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "december rolls into january of next year",
			dueDay: 3,
			now:    time.Date(2026, time.December, 20, 12, 0, 0, 0, time.UTC),
			want:   time.Date(2027, time.January, 3, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "day 31 clamps to april 30",
			dueDay: 31,
			now:    time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC),
			want:   time.Date(2026, time.April, 30, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "day 30 clamps to february 28",
			dueDay: 30,
			now:    time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC),
			want:   time.Date(2026, time.February, 28, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "day 30 clamps to february 29 in a leap year",
			dueDay: 30,
			now:    time.Date(2028, time.February, 1, 12, 0, 0, 0, time.UTC),
			want:   time.Date(2028, time.February, 29, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "keeps now's location",
			dueDay: 20,
			now:    time.Date(2026, time.June, 5, 8, 0, 0, 0, paris),
			want:   time.Date(2026, time.June, 20, 9, 0, 0, 0, paris),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NextOccurrence(tt.dueDay, tt.now)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, tt.want.Location(), got.Location())
		})
	}
}
