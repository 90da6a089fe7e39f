// Package ingest decodes scraper competition dumps and flattens the nested
// competition/event/round structure into raw appearance records.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/fencekor/fenceid/internal/classify"
	"github.com/fencekor/fenceid/internal/model"
)

// Dump is the top-level scraper output format.
type Dump struct {
	Competitions []Competition `json:"competitions"`
}

// Competition mirrors one competition in the scraper dump.
type Competition struct {
	Competition CompetitionMeta `json:"competition"`
	Events      []Event         `json:"events"`
}

type CompetitionMeta struct {
	EventCD   string `json:"event_cd"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
}

type Event struct {
	Name          string    `json:"name"`
	Weapon        string    `json:"weapon"`
	PoolRounds    []Pool    `json:"pool_rounds"`
	FinalRankings []Entry   `json:"final_rankings"`
	DEBracket     DEBracket `json:"de_bracket"`
}

type Pool struct {
	Results []Entry `json:"results"`
}

type DEBracket struct {
	Seeding []Entry `json:"seeding"`
}

// Entry is one athlete line in a pool sheet, final ranking, or DE seeding.
type Entry struct {
	Name string `json:"name"`
	Team string `json:"team"`
	Rank int    `json:"rank"`
}

// LoadFile reads a scraper dump from a .json or .json.zst file.
func LoadFile(path string) (*Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	var dump Dump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("decode dump %s: %w", path, err)
	}
	return &dump, nil
}

// Flatten turns one competition into the raw appearance records the
// resolver consumes. Entries with no usable name are dropped here; entries
// with no team are kept (they still count toward a profile).
func Flatten(comp Competition) []model.Appearance {
	meta := comp.Competition
	var out []model.Appearance

	add := func(e Entry, event Event, typ model.RecordType, rank int) {
		name := strings.TrimSpace(e.Name)
		if name == "" || name == "-" {
			return
		}
		weapon := event.Weapon
		if weapon == "" {
			weapon = classify.Weapon(event.Name)
		}
		out = append(out, model.Appearance{
			Name:      name,
			Team:      strings.TrimSpace(e.Team),
			CompID:    meta.EventCD,
			CompName:  meta.Name,
			CompDate:  meta.StartDate,
			EventName: event.Name,
			Weapon:    weapon,
			AgeGroup:  classify.AgeGroup(event.Name),
			Type:      typ,
			Rank:      rank,
		})
	}

	for _, event := range comp.Events {
		for _, pool := range event.PoolRounds {
			for _, res := range pool.Results {
				add(res, event, model.RecordPool, 0)
			}
		}
		for _, ranking := range event.FinalRankings {
			add(ranking, event, model.RecordRanking, ranking.Rank)
		}
		for _, seed := range event.DEBracket.Seeding {
			add(seed, event, model.RecordDESeeding, 0)
		}
	}
	return out
}
