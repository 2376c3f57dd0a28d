package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/config"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/storage"
	"github.com/charmbracelet/lipgloss"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("stats-viewer")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func main() {
	dayFlag := flag.String("day", "", "day to report, YYYY-MM-DD, today when empty")
	days := flag.Int("days", 1, "report this many days ending with -day as a table")
	flag.Parse()

	cfg := config.Get()
	if !cfg.StatsEnabled() {
		logger.Criticalf("Empty DATABASE_DSN env var!")
		os.Exit(1)
	}

	day := time.Now()
	if *dayFlag != "" {
		d, err := time.ParseInLocation("2006-01-02", *dayFlag, time.Local)
		if err != nil {
			logger.Criticalf("bad -day %q: %v", *dayFlag, err)
			os.Exit(2)
		}
		day = d
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s, err := storage.New(ctx, cfg)
	if err != nil {
		logger.Criticalf("failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer s.Close()

	var all []storage.Stats
	for i := *days - 1; i >= 0; i-- {
		st, err := s.DailyStats(ctx, day.AddDate(0, 0, -i))
		if err != nil {
			logger.Criticalf("%v", err)
			os.Exit(1)
		}
		all = append(all, st)
	}

	if len(all) == 1 {
		fmt.Println(renderDay(all[0]))
		return
	}
	fmt.Println(renderTable(all))
}

func renderDay(st storage.Stats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Flight statistics for "+st.Day.Format("2006-01-02")) + "\n\n")
	line := func(label string, n int) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-18s", label)) + countStyle.Render(strconv.Itoa(n)) + "\n")
	}
	line("Planes detected:", st.Total)
	line("Helicopters:", st.Helicopters)
	line("Private jets:", st.PrivateJets)
	line("From Canada:", st.CanadianOrigins)

	if st.Total == 0 {
		b.WriteString("\n" + mutedStyle.Render("nothing seen on approach"))
		return b.String()
	}
	section := func(title string, counts []storage.Count) {
		if len(counts) == 0 {
			return
		}
		b.WriteString("\n" + headerStyle.Render(title) + "\n")
		for _, c := range counts {
			b.WriteString("  " + c.Name + ": " + countStyle.Render(strconv.Itoa(c.N)) + "\n")
		}
	}
	section("Top origins", st.TopOrigins)
	section("Top airlines", st.TopAirlines)
	section("Top aircraft types", st.TopTypes)

	return strings.TrimRight(b.String(), "\n")
}

func renderTable(all []storage.Stats) string {
	var b strings.Builder
	first, last := all[0].Day, all[len(all)-1].Day
	b.WriteString(titleStyle.Render("Flight statistics "+first.Format("2006-01-02")+" to "+last.Format("2006-01-02")) + "\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %7s %7s %7s %7s", "day", "planes", "helis", "jets", "canada")) + "\n")

	var total, helis, jets, canada, active int
	for _, st := range all {
		row := fmt.Sprintf("%-12s %7d %7d %7d %7d", st.Day.Format("2006-01-02"), st.Total, st.Helicopters, st.PrivateJets, st.CanadianOrigins)
		if st.Total == 0 {
			row = mutedStyle.Render(row)
		}
		b.WriteString(row + "\n")
		total += st.Total
		helis += st.Helicopters
		jets += st.PrivateJets
		canada += st.CanadianOrigins
		if st.Total > 0 {
			active++
		}
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s %7d %7d %7d %7d", "total", total, helis, jets, canada)) + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d days with activity", active, len(all))))

	return b.String()
}
