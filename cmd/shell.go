package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fencekor/fenceid/internal/report"
	"github.com/fencekor/fenceid/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Open a persistent session against the database. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	cGreeting.Println("fenceid shell")
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("fenceid")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		cmd, args := tokens[0], tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "list":
			shellList(db)
		case "players":
			shellPlayers(db, args)
		case "show":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: show <player-id>")
				continue
			}
			shellShow(db, args[0])
		case "search":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: search <query> [--history]")
				continue
			}
			history := false
			terms := args[:0:0]
			for _, a := range args {
				if a == "--history" {
					history = true
					continue
				}
				terms = append(terms, a)
			}
			shellSearch(db, strings.Join(terms, " "), history)
		case "ambiguous":
			shellAmbiguous(db)
		case "orgs":
			shellOrgs(db, strings.Join(args, " "))
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q — type 'help'\n", cmd)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"list", "list ingested competitions"},
		{"players", "list all resolved players"},
		{"players <name>", "players with this exact Korean name"},
		{"show <player-id>", "full profile for one player"},
		{"search <query> [--history]", "search by name or team"},
		{"ambiguous", "names that resolved to more than one person"},
		{"orgs [query]", "list registered organizations"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-30s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func shellList(db *storage.DB) {
	comps, err := db.ListCompetitions()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(comps) == 0 {
		cMuted.Println("No competitions ingested yet.")
		return
	}
	cHeader.Fprintf(os.Stdout, "%-12s  %-10s  %7s  %s\n",
		"COMP ID", "DATE", "RECORDS", "NAME")
	cMuted.Fprintf(os.Stdout, "%-12s  %-10s  %7s  %s\n",
		"────────────", "──────────", "───────", "────────────────────")
	for _, c := range comps {
		fmt.Fprintf(os.Stdout, "%-12s  %-10s  %7d  %s\n",
			c.CompID, c.StartDate, c.Records, c.Name)
	}
}

func shellPlayers(db *storage.DB, args []string) {
	var (
		rows []storage.PlayerRow
		err  error
	)
	if len(args) == 0 {
		rows, err = db.ListPlayers()
	} else {
		rows, err = db.PlayersByName(strings.Join(args, " "))
	}
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(rows) == 0 {
		cMuted.Println("No players found.")
		return
	}
	report.PrintPlayerTable(os.Stdout, playerLines(rows))
}

func shellShow(db *storage.DB, playerID string) {
	row, err := db.GetPlayer(playerID)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if row == nil {
		cWarn.Fprintf(os.Stderr, "no player with ID %q\n", playerID)
		return
	}
	report.PrintPlayerDetail(os.Stdout, report.PlayerLine{
		Profile:      row.PlayerProfile,
		Competitions: row.CompetitionCount,
		Records:      row.RecordCount,
	})
}

func shellSearch(db *storage.DB, query string, history bool) {
	rows, err := db.SearchPlayers(query, history)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(rows) == 0 {
		cMuted.Printf("No players matching %q\n", query)
		return
	}
	report.PrintPlayerTable(os.Stdout, playerLines(rows))
}

func shellAmbiguous(db *storage.DB) {
	names, err := db.AmbiguousNames()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(names) == 0 {
		cMuted.Println("No ambiguous names.")
		return
	}
	entries := make(map[string][]report.PlayerLine, len(names))
	for _, name := range names {
		rows, err := db.PlayersByName(name)
		if err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		entries[name] = playerLines(rows)
	}
	report.PrintAmbiguousNames(os.Stdout, entries)
}

func shellOrgs(db *storage.DB, query string) {
	rows, err := db.ListOrganizations()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	var lines []report.OrgLine
	q := strings.ToLower(query)
	for _, row := range rows {
		if q != "" &&
			!strings.Contains(strings.ToLower(row.Name), q) &&
			!strings.Contains(strings.ToLower(row.NameEN), q) {
			continue
		}
		lines = append(lines, report.OrgLine{Org: row.Organization, Players: row.PlayerTotal})
	}
	if len(lines) == 0 {
		cMuted.Println("No organizations found.")
		return
	}
	report.PrintOrgTable(os.Stdout, lines)
}
