// Example: cronpick + zap structured logging.
// Malformed host values are logged at warn level, published expressions at debug level.

package main

import (
	"github.com/osmike/cronpick"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	mon := cronpick.NewMonitoring()
	p, err := cronpick.NewPicker(cronpick.NewMemoryHost("* * *"), cronpick.NewStandard(),
		cronpick.WithLogger(logger),
		cronpick.WithMonitoring(mon),
		cronpick.WithHourFormat(cronpick.Format12),
	)
	if err != nil {
		logger.Fatal("Failed to create picker", zap.Error(err))
	}

	p.SetType(cronpick.Monthly)
	p.SetDayNumber(15)
	p.SetHours(9)
	p.SetMeridiem(cronpick.PM)

	if err := p.SetDayFilter(cronpick.DayFilterWeekday); err != nil {
		logger.Info("Standard dialect cannot pick a weekday of the month", zap.Error(err))
	}

	for _, c := range mon.GetChanges() {
		logger.Info("Change", zap.String("expression", c.Expression), zap.String("type", string(c.Type)))
	}
}
