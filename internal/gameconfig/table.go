package gameconfig

// Label length caps shared by the table-game configs.
const (
	maxTableLabelLen = 50
	maxThemeLen      = 30
)

// TableLimits are the operational fields shared by blackjack and poker rule
// configs: sit-out and disconnect handling, anti-collusion seating, session
// caps, and cosmetic labels.
type TableLimits struct {
	SitoutTimeLimitSeconds    *int64   `json:"sitout_time_limit_seconds,omitempty"`
	DisconnectWaitSeconds     *int64   `json:"disconnect_wait_seconds,omitempty"`
	MaxSameCountrySeats       *int64   `json:"max_same_country_seats,omitempty"`
	SessionMaxDurationMinutes *int64   `json:"session_max_duration_minutes,omitempty"`
	MaxDailyBuyinLimit        *float64 `json:"max_daily_buyin_limit,omitempty"`
	TableLabel                string   `json:"table_label,omitempty"`
	Theme                     string   `json:"theme,omitempty"`
}

// tableLimits validates the shared advanced fields in their fixed order.
func (c checker) tableLimits(payload map[string]any) (TableLimits, *ValidationError) {
	var out TableLimits

	sitout, err := c.optInt(payload, "sitout_time_limit_seconds")
	if err != nil {
		return out, err
	}
	if sitout != nil && *sitout < 30 {
		return out, c.fail("sitout_time_limit_seconds", *sitout, ReasonOutOfRange)
	}

	disconnect, err := c.optInt(payload, "disconnect_wait_seconds")
	if err != nil {
		return out, err
	}
	if disconnect != nil && (*disconnect < 5 || *disconnect > 300) {
		return out, c.fail("disconnect_wait_seconds", *disconnect, ReasonOutOfRange)
	}

	sameCountry, err := c.optInt(payload, "max_same_country_seats")
	if err != nil {
		return out, err
	}
	if sameCountry != nil && (*sameCountry < 1 || *sameCountry > 10) {
		return out, c.fail("max_same_country_seats", *sameCountry, ReasonOutOfRange)
	}

	sessionMax, err := c.optInt(payload, "session_max_duration_minutes")
	if err != nil {
		return out, err
	}
	if sessionMax != nil && (*sessionMax < 10 || *sessionMax > 1440) {
		return out, c.fail("session_max_duration_minutes", *sessionMax, ReasonOutOfRange)
	}

	dailyBuyin, err := c.optPositive(payload, "max_daily_buyin_limit")
	if err != nil {
		return out, err
	}

	label, _, err := c.optStr(payload, "table_label")
	if err != nil {
		return out, err
	}
	if len(label) > maxTableLabelLen {
		return out, c.fail("table_label", label, ReasonTooLong)
	}
	theme, _, err := c.optStr(payload, "theme")
	if err != nil {
		return out, err
	}
	if len(theme) > maxThemeLen {
		return out, c.fail("theme", theme, ReasonTooLong)
	}

	out.SitoutTimeLimitSeconds = sitout
	out.DisconnectWaitSeconds = disconnect
	out.MaxSameCountrySeats = sameCountry
	out.SessionMaxDurationMinutes = sessionMax
	out.MaxDailyBuyinLimit = dailyBuyin
	out.TableLabel = label
	out.Theme = theme
	return out, nil
}
