// services/revenue_service.go
package services

import (
	"sort"
	"strings"
	"time"

	"salonledger-backend/models"
	"salonledger-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Scope narrows a log query beyond the salon filter (e.g. to one staff
// member's rows). A nil Scope means salon-wide.
type Scope func(tx *gorm.DB) *gorm.DB

// RevenueService computes aggregates over service logs for a resolved
// UTC instant range. Sums are accumulated in exact decimals; callers
// round once at the response boundary.
type RevenueService struct {
	db *gorm.DB
}

func NewRevenueService(db *gorm.DB) *RevenueService {
	return &RevenueService{db: db}
}

// Totals are the per-range payment sums. Logs whose payment method is
// outside {cash, upi} count toward Total but neither subtotal, so Total
// may exceed Cash+Upi. That asymmetry is inherited behaviour; see
// DESIGN.md before changing it.
type Totals struct {
	Total decimal.Decimal
	Cash  decimal.Decimal
	Upi   decimal.Decimal
	Count int
}

// GroupTotal is one bucket of a grouped aggregate.
type GroupTotal struct {
	Name    string
	Revenue decimal.Decimal
	Count   int
}

// BucketTotal is one slot of a dense calendar series.
type BucketTotal struct {
	Bucket  int
	Revenue decimal.Decimal
}

func (s *RevenueService) rangeQuery(salonID uuid.UUID, start, end time.Time, scope Scope) *gorm.DB {
	q := s.db.Model(&models.ServiceLog{}).
		Where("salon_id = ? AND served_at >= ? AND served_at < ?", salonID, start, end)
	if scope != nil {
		q = scope(q)
	}
	return q
}

// Totals computes the summary figures for the range.
func (s *RevenueService) Totals(salonID uuid.UUID, start, end time.Time, scope Scope) (Totals, error) {
	var logs []models.ServiceLog
	if err := s.rangeQuery(salonID, start, end, scope).Find(&logs).Error; err != nil {
		return Totals{}, err
	}

	t := Totals{Count: len(logs)}
	for _, l := range logs {
		t.Total = t.Total.Add(l.Price)
		switch strings.ToLower(l.PaymentMethod) {
		case models.PaymentCash:
			t.Cash = t.Cash.Add(l.Price)
		case models.PaymentUpi:
			t.Upi = t.Upi.Add(l.Price)
		}
	}
	return t, nil
}

type joinedRow struct {
	Name  string
	Price decimal.Decimal
}

// ServiceBreakdown groups revenue by service name, inner-joined: logs
// carrying only a custom service name are excluded.
func (s *RevenueService) ServiceBreakdown(salonID uuid.UUID, start, end time.Time, scope Scope) ([]GroupTotal, error) {
	q := s.db.Table("service_logs").
		Select("services.name AS name, service_logs.price AS price").
		Joins("JOIN services ON services.id = service_logs.service_id").
		Where("service_logs.salon_id = ? AND service_logs.served_at >= ? AND service_logs.served_at < ?", salonID, start, end)
	if scope != nil {
		q = scope(q)
	}
	var rows []joinedRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return groupByName(rows), nil
}

// StaffPerformance groups revenue by staff name, inner-joined: logs with
// no staff attribution are excluded.
func (s *RevenueService) StaffPerformance(salonID uuid.UUID, start, end time.Time) ([]GroupTotal, error) {
	var rows []joinedRow
	err := s.db.Table("service_logs").
		Select("staff.name AS name, service_logs.price AS price").
		Joins("JOIN staff ON staff.id = service_logs.staff_id").
		Where("service_logs.salon_id = ? AND service_logs.served_at >= ? AND service_logs.served_at < ?", salonID, start, end).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return groupByName(rows), nil
}

func groupByName(rows []joinedRow) []GroupTotal {
	byName := make(map[string]*GroupTotal)
	for _, r := range rows {
		g, ok := byName[r.Name]
		if !ok {
			g = &GroupTotal{Name: r.Name}
			byName[r.Name] = g
		}
		g.Revenue = g.Revenue.Add(r.Price)
		g.Count++
	}

	groups := make([]GroupTotal, 0, len(byName))
	for _, g := range byName {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].Revenue.Equal(groups[j].Revenue) {
			return groups[i].Revenue.GreaterThan(groups[j].Revenue)
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}

// MonthlySeries buckets one calendar month by local day. The series is
// dense: every day of the month is present, zero where no logs. Bucket
// assignment converts each stored UTC instant back to salon-local time
// first — a log near a UTC day boundary can land on a different local
// day than its UTC date suggests.
func (s *RevenueService) MonthlySeries(salon models.Salon, year int, month time.Month) ([]BucketTotal, decimal.Decimal, error) {
	loc, err := salon.Location()
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	start, end := utils.MonthRange(loc, year, month)

	var logs []models.ServiceLog
	if err := s.rangeQuery(salon.ID, start, end, nil).Find(&logs).Error; err != nil {
		return nil, decimal.Decimal{}, err
	}

	days := utils.DaysInMonth(year, month)
	series := make([]BucketTotal, days)
	for i := range series {
		series[i].Bucket = i + 1
	}

	var grand decimal.Decimal
	for _, l := range logs {
		day := l.ServedAt.In(loc).Day()
		series[day-1].Revenue = series[day-1].Revenue.Add(l.Price)
		grand = grand.Add(l.Price)
	}
	return series, grand, nil
}

// YearlySeries buckets one calendar year by local month, dense over all
// twelve months.
func (s *RevenueService) YearlySeries(salon models.Salon, year int) ([]BucketTotal, decimal.Decimal, error) {
	loc, err := salon.Location()
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	start, end := utils.YearRange(loc, year)

	var logs []models.ServiceLog
	if err := s.rangeQuery(salon.ID, start, end, nil).Find(&logs).Error; err != nil {
		return nil, decimal.Decimal{}, err
	}

	series := make([]BucketTotal, 12)
	for i := range series {
		series[i].Bucket = i + 1
	}

	var grand decimal.Decimal
	for _, l := range logs {
		month := int(l.ServedAt.In(loc).Month())
		series[month-1].Revenue = series[month-1].Revenue.Add(l.Price)
		grand = grand.Add(l.Price)
	}
	return series, grand, nil
}
