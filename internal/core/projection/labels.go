package projection

import (
	"fmt"
	"time"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
)

// MonthLabel returns the display label of month i (1-based) for a projection whose
// first month is the calendar month startMonth (0 is treated as January).
// When withYear is set the label carries the projection year, e.g. "Mar Y2".
func MonthLabel(startMonth, i int, withYear bool) string {
	if startMonth < 1 || startMonth > 12 {
		startMonth = 1
	}
	calendar := time.Month((startMonth-1+i-1)%domain.MonthsPerYear + 1)
	name := calendar.String()[:3]
	if !withYear {
		return name
	}
	return fmt.Sprintf("%s Y%d", name, (i-1)/domain.MonthsPerYear+1)
}
