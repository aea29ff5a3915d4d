package isoweek_test

import (
	"opsconsole/isoweek"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("IsoWeek", func() {
	Describe("WeekOf", func() {
		It("should label ordinary dates", func() {
			Expect(isoweek.WeekOf(time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC))).To(Equal("2025-W33"))
			Expect(isoweek.WeekOf(time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC))).To(Equal("2025-W33"))
			Expect(isoweek.WeekOf(time.Date(2025, 8, 17, 23, 59, 59, 0, time.UTC))).To(Equal("2025-W33"))
		})

		It("should move year-end days into week 1 of the next year", func() {
			Expect(isoweek.WeekOf(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC))).To(Equal("2025-W01"))
			Expect(isoweek.WeekOf(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))).To(Equal("2025-W01"))
			Expect(isoweek.WeekOf(time.Date(2019, 12, 30, 0, 0, 0, 0, time.UTC))).To(Equal("2020-W01"))
		})

		It("should keep early-January days in the last week of the previous year", func() {
			Expect(isoweek.WeekOf(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))).To(Equal("2020-W53"))
			Expect(isoweek.WeekOf(time.Date(2021, 1, 3, 0, 0, 0, 0, time.UTC))).To(Equal("2020-W53"))
			Expect(isoweek.WeekOf(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))).To(Equal("2026-W53"))
		})

		It("should ignore the time zone of the input date", func() {
			loc := time.FixedZone("UTC+13", 13*3600)
			Expect(isoweek.WeekOf(time.Date(2025, 8, 14, 23, 0, 0, 0, loc))).To(Equal("2025-W33"))
		})
	})

	Describe("Parse", func() {
		It("should reject malformed labels", func() {
			for _, label := range []string{"", "2025", "2025-33", "2025-W", "2025-Wxx", "2025-W00", "2025-W54"} {
				_, _, err := isoweek.Parse(label)
				Expect(err).To(Equal(isoweek.ErrInvalidWeekLabel))
			}
		})

		It("should parse valid labels", func() {
			year, week, err := isoweek.Parse("2025-W03")
			Expect(err).To(BeNil())
			Expect(year).To(Equal(2025))
			Expect(week).To(Equal(3))
		})
	})

	Describe("FridayOf", func() {
		It("should return the Friday of the week", func() {
			Expect(isoweek.FridayOf("2025-W33")).To(Equal("2025-08-15"))
			Expect(isoweek.FridayOf("2025-W01")).To(Equal("2025-01-03"))
			Expect(isoweek.FridayOf("2020-W53")).To(Equal("2021-01-01"))
		})

		It("should land in the same Monday-Sunday span as the source date", func() {
			day := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
			for i := 0; i < 120; i++ {
				label := isoweek.WeekOf(day)
				fridayYmd, err := isoweek.FridayOf(label)
				Expect(err).To(BeNil())
				friday, err := time.Parse("2006-01-02", fridayYmd)
				Expect(err).To(BeNil())

				monday, err := isoweek.MondayOf(label)
				Expect(err).To(BeNil())
				sunday := monday.AddDate(0, 0, 6)
				Expect(day.Before(monday)).To(BeFalse())
				Expect(day.After(sunday)).To(BeFalse())
				Expect(friday.Before(monday)).To(BeFalse())
				Expect(friday.After(sunday)).To(BeFalse())

				day = day.AddDate(0, 0, 1)
			}
		})
	})

	Describe("Shift", func() {
		It("should move across year boundaries", func() {
			Expect(isoweek.Shift("2025-W52", 1)).To(Equal("2026-W01"))
			Expect(isoweek.Shift("2026-W01", -1)).To(Equal("2025-W52"))
			Expect(isoweek.Shift("2020-W53", 1)).To(Equal("2021-W01"))
			Expect(isoweek.Shift("2021-W01", -1)).To(Equal("2020-W53"))
		})

		It("should step Fridays by exactly 7 days over long chains", func() {
			label := "2024-W48"
			prevFriday, err := isoweek.FridayOf(label)
			Expect(err).To(BeNil())
			prev, err := time.Parse("2006-01-02", prevFriday)
			Expect(err).To(BeNil())

			for i := 0; i < 120; i++ {
				label, err = isoweek.Shift(label, 1)
				Expect(err).To(BeNil())
				fridayYmd, err := isoweek.FridayOf(label)
				Expect(err).To(BeNil())
				friday, err := time.Parse("2006-01-02", fridayYmd)
				Expect(err).To(BeNil())
				Expect(friday.Sub(prev)).To(Equal(7 * 24 * time.Hour))
				prev = friday
			}
		})

		It("should reject malformed labels", func() {
			_, err := isoweek.Shift("nonsense", 1)
			Expect(err).To(Equal(isoweek.ErrInvalidWeekLabel))
		})
	})

	Describe("WeeksInYear", func() {
		It("should distinguish 52- and 53-week years", func() {
			Expect(isoweek.WeeksInYear(2020)).To(Equal(53))
			Expect(isoweek.WeeksInYear(2024)).To(Equal(52))
			Expect(isoweek.WeeksInYear(2025)).To(Equal(52))
			Expect(isoweek.WeeksInYear(2026)).To(Equal(53))
		})
	})
})
