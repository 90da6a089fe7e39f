package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/fencekor/fenceid/internal/storage"
)

const analyzeSystemPrompt = `You are an analyst for a fencing player identity database. You are given
structured data about one resolved player identity and a question.

Rules:
- Answer ONLY from the data provided. Never invent results or affiliations.
- Always cite specific teams, dates, and counts when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise.

Data glossary:
- player_id: stable minted ID; one ID is one real person.
- team_history: affiliations in first-appearance order, with seen ranges.
- ambiguous: the same Korean name may belong to several IDs; this record
  covers exactly one of them.
- podium_by_season: gold/silver/bronze are final ranks 1-3; top8 is 4-8.
- name_en_verified: the English name was checked against FIE or
  fencingtracker, not machine-romanized.`

var (
	analyzeModel  string
	analyzeAPIKey string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "AI-powered grounded analysis (requires ANTHROPIC_API_KEY)",
}

var analyzePlayerCmd = &cobra.Command{
	Use:   "player <player-id> <question>",
	Short: "Analyze one resolved identity with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzePlayer,
}

func init() {
	analyzeCmd.PersistentFlags().StringVar(&analyzeModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	analyzeCmd.PersistentFlags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")

	analyzeCmd.AddCommand(analyzePlayerCmd)
}

func runAnalyzePlayer(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	row, err := db.GetPlayer(args[0])
	if err != nil {
		return fmt.Errorf("load player: %w", err)
	}
	if row == nil {
		return fmt.Errorf("no player with ID %q", args[0])
	}
	question := args[1]

	siblings, err := db.PlayersByName(row.Name)
	if err != nil {
		return fmt.Errorf("load homonyms: %w", err)
	}

	contextJSON, err := buildPlayerContext(row, len(siblings))
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, question)
}

// buildPlayerContext serialises one identity into compact JSON.
func buildPlayerContext(row *storage.PlayerRow, identitiesUnderName int) (string, error) {
	p := row.PlayerProfile

	type teamEntry struct {
		Team      string `json:"team"`
		TeamEN    string `json:"team_en,omitempty"`
		OrgID     string `json:"org_id,omitempty"`
		FirstSeen string `json:"first_seen"`
		LastSeen  string `json:"last_seen"`
		Comps     int    `json:"competitions"`
	}
	teams := make([]teamEntry, 0, len(p.TeamHistory))
	for _, tr := range p.TeamHistory {
		teams = append(teams, teamEntry{
			Team: tr.Team, TeamEN: tr.TeamEN, OrgID: tr.TeamID,
			FirstSeen: tr.FirstSeen, LastSeen: tr.LastSeen, Comps: tr.CompetitionCount,
		})
	}

	doc := map[string]interface{}{
		"subject":               "player",
		"player_id":             p.PlayerID,
		"name":                  p.Name,
		"name_en":               p.NameEN,
		"name_en_verified":      p.NameENVerified,
		"ambiguous":             identitiesUnderName > 1,
		"identities_under_name": identitiesUnderName,
		"current_team":          p.CurrentTeam(),
		"team_history":          teams,
		"weapons":               p.SortedWeapons(),
		"age_groups":            p.SortedAgeGroups(),
		"competitions":          row.CompetitionCount,
		"records":               row.RecordCount,
		"podium_by_season":      p.PodiumBySeason,
	}
	if p.FIEID != "" {
		doc["fie_id"] = p.FIEID
	}
	if p.FencingTrackerID != "" {
		doc["fencingtracker_id"] = p.FencingTrackerID
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

func callAnthropic(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		// Provide a cleaner error message for common API errors.
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed — check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
