// Package report renders resolved identities as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/fencekor/fenceid/internal/intlname"
	"github.com/fencekor/fenceid/internal/model"
	"github.com/fencekor/fenceid/internal/orgs"
)

// PlayerLine is one row of a player listing: the profile plus the aggregate
// counts that survive storage.
type PlayerLine struct {
	Profile      *model.PlayerProfile
	Competitions int
	Records      int
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintPlayerTable writes the player listing table.
func PrintPlayerTable(w io.Writer, lines []PlayerLine) {
	table := newTable(w)
	table.Header("ID", "NAME", "NAME_EN", "CURRENT TEAM", "WEAPONS", "COMPS", "RECORDS")

	for _, l := range lines {
		p := l.Profile
		nameEN := p.NameEN
		if nameEN != "" && p.NameENVerified {
			nameEN += " *"
		}
		table.Append(
			p.PlayerID,
			p.Name,
			nameEN,
			p.CurrentTeam(),
			strings.Join(p.SortedWeapons(), ","),
			strconv.Itoa(l.Competitions),
			strconv.Itoa(l.Records),
		)
	}
	table.Render()
}

// PrintPlayerDetail writes one player's full card: identity header, team
// history, and per-season podium counts.
func PrintPlayerDetail(w io.Writer, line PlayerLine) {
	p := line.Profile

	fmt.Fprintf(w, "\n%s  %s", p.PlayerID, p.Name)
	if p.NameEN != "" {
		verified := ""
		if p.NameENVerified {
			verified = " (verified)"
		}
		fmt.Fprintf(w, "  |  %s%s", p.NameEN, verified)
	}
	fmt.Fprintln(w)
	if p.FIEID != "" {
		fmt.Fprintf(w, "FIE: %s (%s)\n", p.FIEID, intlname.FIEProfileURL(p.FIEID))
	}
	if p.FencingTrackerID != "" {
		fmt.Fprintf(w, "FencingTracker: %s (%s)\n", p.FencingTrackerID, intlname.TrackerProfileURL(p.FencingTrackerID))
	}
	fmt.Fprintf(w, "Weapons: %s  |  Age groups: %s  |  Competitions: %d  |  Records: %d\n\n",
		strings.Join(p.SortedWeapons(), ", "),
		strings.Join(p.SortedAgeGroups(), ", "),
		line.Competitions, line.Records)

	PrintTeamHistory(w, p.TeamHistory)
	if len(p.PodiumBySeason) > 0 {
		fmt.Fprintln(w)
		PrintPodiums(w, p.PodiumBySeason)
	}
}

// PrintTeamHistory writes the team affiliation table in history order.
func PrintTeamHistory(w io.Writer, history []*model.TeamRecord) {
	table := newTable(w)
	table.Header("TEAM", "TEAM_EN", "ORG ID", "FIRST SEEN", "LAST SEEN", "COMPS")
	for _, tr := range history {
		table.Append(
			tr.Team,
			tr.TeamEN,
			tr.TeamID,
			tr.FirstSeen,
			tr.LastSeen,
			strconv.Itoa(tr.CompetitionCount),
		)
	}
	table.Render()
}

// PrintPodiums writes per-season podium counts, oldest season first.
func PrintPodiums(w io.Writer, podiums map[string]*model.PodiumCounts) {
	seasons := make([]string, 0, len(podiums))
	for s := range podiums {
		seasons = append(seasons, s)
	}
	sort.Strings(seasons)

	table := newTable(w)
	table.Header("SEASON", "GOLD", "SILVER", "BRONZE", "TOP8", "TOTAL")
	for _, s := range seasons {
		c := podiums[s]
		table.Append(s,
			strconv.Itoa(c.Gold), strconv.Itoa(c.Silver),
			strconv.Itoa(c.Bronze), strconv.Itoa(c.Top8), strconv.Itoa(c.Total))
	}
	table.Render()
}

// OrgLine is one row of an organization listing.
type OrgLine struct {
	Org     orgs.Organization
	Players int
}

// PrintOrgTable writes the organization listing table.
func PrintOrgTable(w io.Writer, lines []OrgLine) {
	table := newTable(w)
	table.Header("ID", "NAME", "NAME_EN", "TYPE", "REGION", "PLAYERS", "COMPS")
	for _, l := range lines {
		nameEN := l.Org.NameEN
		if nameEN != "" && l.Org.NameENVerified {
			nameEN += " *"
		}
		table.Append(
			l.Org.OrgID,
			l.Org.Name,
			nameEN,
			l.Org.Type.String(),
			l.Org.RegionEN,
			strconv.Itoa(l.Players),
			strconv.Itoa(l.Org.CompetitionCount),
		)
	}
	table.Render()
}

// PrintAmbiguousNames writes the homonym table: each name with the
// identities it resolved to.
func PrintAmbiguousNames(w io.Writer, entries map[string][]PlayerLine) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	table := newTable(w)
	table.Header("NAME", "ID", "CURRENT TEAM", "FIRST TEAM", "COMPS")
	for _, name := range names {
		for _, l := range entries[name] {
			p := l.Profile
			firstTeam := ""
			if len(p.TeamHistory) > 0 {
				firstTeam = p.TeamHistory[0].Team
			}
			table.Append(name, p.PlayerID, p.CurrentTeam(), firstTeam, strconv.Itoa(l.Competitions))
		}
	}
	table.Render()
}
