// Package testdocs generates synthetic training-overview documents that
// follow the textual conventions of the real MGA export: a name line, the
// goal paragraph carrying the person anchor phrase, optional qualification
// metadata lines, tier headers and module lines with H:MM hour pairs.
// Used by extractor tests and the gen-doc command.
package testdocs

import (
	"fmt"
	"math/rand"

	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/adapters/source"
)

// Config controls document generation. The same config and seed always yield
// the same document.
type Config struct {
	People         int
	ModulesPerTier int
	Seed           int64
}

// DefaultConfig returns a small but representative document shape.
func DefaultConfig() Config {
	return Config{People: 4, ModulesPerTier: 5, Seed: 42}
}

var firstNames = []string{"Hans", "Anna", "Jonas", "Lena", "Max", "Marie", "Felix", "Laura"}

var lastNames = []string{"Muster", "Schmidt", "Weber", "Becker", "Wagner", "Hoffmann", "Koch", "Richter"}

var moduleTitles = []string{
	"Rechtsgrundlagen",
	"Brennen und Löschen",
	"Fahrzeugkunde",
	"Persönliche Schutzausrüstung",
	"Löscheinsatz",
	"Technische Hilfeleistung",
	"Verhalten bei Gefahr",
	"Gerätekunde Schläuche und Armaturen",
	"Retten und Selbstretten",
	"Unfallversicherung",
}

var metaLines = []string{
	"Ausbildung in Erster Hilfe Bestanden 12.03.2022",
	"Qualifikationsstufe Einsatzfähigkeit erreicht am 01.06.2023",
	"Qualifikationsstufe Truppmitglied erreicht am 14.10.2023",
	"Atemschutzgeräteträgerlehrgang Bestanden 09.04.2016 - 23.04.2016",
	"Sprechfunker Digitalfunk Bestanden 05.02.2020",
}

var statuses = []string{"Absolviert", "In Arbeit", "Nicht absolviert"}

// Generate produces one page per person.
func Generate(cfg Config) []source.Page {
	if cfg.People <= 0 {
		cfg.People = 1
	}
	if cfg.ModulesPerTier <= 0 {
		cfg.ModulesPerTier = 3
	}
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic seed for reproducible documents

	pages := make([]source.Page, 0, cfg.People)
	for i := 0; i < cfg.People; i++ {
		name := fmt.Sprintf("%s %s",
			firstNames[rng.Intn(len(firstNames))],
			lastNames[rng.Intn(len(lastNames))])

		lines := []string{
			"Freiwillige Feuerwehr Musterstadt",
			"Ausbildungsübersicht",
			"",
			name,
			"Ziel der modularen Grundlagenausbildung ist die Einsatzfähigkeit.",
			"",
		}

		// A random subset of metadata lines, in enumeration order.
		for _, meta := range metaLines {
			if rng.Intn(2) == 0 {
				lines = append(lines, meta)
			}
		}

		lines = append(lines, "MGA - QS1")
		lines = append(lines, moduleLines(rng, "M1", cfg.ModulesPerTier)...)
		lines = append(lines, "MGA - QS2 - Aufbaumodule")
		lines = append(lines, moduleLines(rng, "M2", cfg.ModulesPerTier)...)

		pages = append(pages, source.Page{Number: i + 1, Lines: lines})
	}
	return pages
}

func moduleLines(rng *rand.Rand, prefix string, n int) []string {
	lines := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		soll := clock(rng.Intn(8) + 1)
		ist := clock(rng.Intn(10))
		pSoll := clock(rng.Intn(6))
		pIst := clock(rng.Intn(6))
		status := statuses[rng.Intn(len(statuses))]
		title := moduleTitles[rng.Intn(len(moduleTitles))]
		lines = append(lines, fmt.Sprintf("MGA - %s.%d %s T: %s/%s P: %s/%s %s",
			prefix, i, title, ist, soll, pIst, pSoll, status))
	}
	return lines
}

// clock renders quarter hours as an H:MM string.
func clock(quarters int) string {
	return fmt.Sprintf("%d:%02d", quarters/4, quarters%4*15)
}

// Render joins pages into one plain-text document, pages separated by form
// feeds, suitable for the text source adapter.
func Render(pages []source.Page) string {
	out := ""
	for i, page := range pages {
		if i > 0 {
			out += "\f"
		}
		for j, line := range page.Lines {
			if j > 0 {
				out += "\n"
			}
			out += line
		}
	}
	return out
}
