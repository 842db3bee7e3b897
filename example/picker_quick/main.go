// Example: build a weekly schedule with the headless picker and print every
// expression it publishes, in both dialects.

package main

import (
	"fmt"
	"github.com/osmike/cronpick"
	"log"
)

func main() {
	for _, dialect := range []cronpick.Dialect{cronpick.Standard, cronpick.Quartz} {
		f, err := cronpick.NewFormatter(dialect)
		if err != nil {
			log.Fatal(err)
		}

		p, err := cronpick.NewPicker(cronpick.NewMemoryHost(""), f,
			cronpick.WithOnChange(func(expr string) {
				fmt.Printf("[%s] %q\n", dialect, expr)
			}),
		)
		if err != nil {
			log.Fatal(err)
		}

		p.SetType(cronpick.Weekly)
		p.ToggleDayOfWeek(2)
		p.ToggleDayOfWeek(4)
		p.SetHours(18)
		p.Destroy()
	}

	d, err := cronpick.NewQuartz().Parse("0 15 10 ? 1/2 FRIL *")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("parsed: %+v\n", d)
}
