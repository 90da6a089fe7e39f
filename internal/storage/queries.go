package storage

import (
	"database/sql"
	"fmt"

	"github.com/fencekor/fenceid/internal/model"
	"github.com/fencekor/fenceid/internal/orgs"
)

// CompetitionExists returns true if a competition is already ingested.
func (db *DB) CompetitionExists(compID string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM competitions WHERE comp_id = ?", compID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertCompetition stores a competition summary. Uses INSERT OR REPLACE
// for idempotency.
func (db *DB) InsertCompetition(cs model.CompetitionSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO competitions(comp_id, name, start_date, records)
		VALUES (?, ?, ?, ?)`,
		cs.CompID, cs.Name, cs.StartDate, cs.Records,
	)
	return err
}

// ListCompetitions returns all stored competitions ordered by start date.
func (db *DB) ListCompetitions() ([]model.CompetitionSummary, error) {
	rows, err := db.conn.Query(`
		SELECT comp_id, name, start_date, records
		FROM competitions ORDER BY start_date, comp_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CompetitionSummary
	for rows.Next() {
		var cs model.CompetitionSummary
		if err := rows.Scan(&cs.CompID, &cs.Name, &cs.StartDate, &cs.Records); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

// InsertRawRecords bulk-inserts appearance records in a transaction.
func (db *DB) InsertRawRecords(records []model.Appearance) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO raw_records(
			comp_id, comp_name, comp_date, name, team,
			event_name, weapon, age_group, record_type, rank
		) VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err = stmt.Exec(
			rec.CompID, rec.CompName, rec.CompDate, rec.Name, rec.Team,
			rec.EventName, rec.Weapon, rec.AgeGroup, string(rec.Type), rec.Rank,
		)
		if err != nil {
			return fmt.Errorf("insert raw record for %s: %w", rec.Name, err)
		}
	}
	return tx.Commit()
}

// LoadRawRecords returns every stored appearance record in insertion order.
func (db *DB) LoadRawRecords() ([]model.Appearance, error) {
	rows, err := db.conn.Query(`
		SELECT comp_id, comp_name, comp_date, name, team,
		       event_name, weapon, age_group, record_type, rank
		FROM raw_records ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appearance
	for rows.Next() {
		var rec model.Appearance
		var typ string
		if err := rows.Scan(&rec.CompID, &rec.CompName, &rec.CompDate, &rec.Name, &rec.Team,
			&rec.EventName, &rec.Weapon, &rec.AgeGroup, &typ, &rec.Rank); err != nil {
			return nil, err
		}
		rec.Type = model.RecordType(typ)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SavePlayers replaces every resolved profile in one transaction. A
// resolution run rebuilds all identities, so the previous generation is
// dropped wholesale.
func (db *DB) SavePlayers(profiles []*model.PlayerProfile) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"team_history", "player_weapons", "player_age_groups", "podiums", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	playerStmt, err := tx.Prepare(`
		INSERT INTO players(
			player_id, name, name_en, name_en_verified, fie_id,
			fencingtracker_id, current_team, competition_count, record_count
		) VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer playerStmt.Close()

	teamStmt, err := tx.Prepare(`
		INSERT INTO team_history(
			player_id, seq, team, team_id, team_en,
			first_seen, last_seen, competition_count
		) VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer teamStmt.Close()

	weaponStmt, err := tx.Prepare("INSERT INTO player_weapons(player_id, weapon) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer weaponStmt.Close()

	ageStmt, err := tx.Prepare("INSERT INTO player_age_groups(player_id, age_group) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer ageStmt.Close()

	podiumStmt, err := tx.Prepare(`
		INSERT INTO podiums(player_id, season, gold, silver, bronze, top8, total)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer podiumStmt.Close()

	for _, p := range profiles {
		_, err = playerStmt.Exec(
			p.PlayerID, p.Name, p.NameEN, boolInt(p.NameENVerified),
			p.FIEID, p.FencingTrackerID, p.CurrentTeam(),
			len(p.CompetitionIDs), len(p.Records),
		)
		if err != nil {
			return fmt.Errorf("insert player %s: %w", p.PlayerID, err)
		}
		for seq, tr := range p.TeamHistory {
			_, err = teamStmt.Exec(
				p.PlayerID, seq, tr.Team, tr.TeamID, tr.TeamEN,
				tr.FirstSeen, tr.LastSeen, tr.CompetitionCount,
			)
			if err != nil {
				return fmt.Errorf("insert team history for %s: %w", p.PlayerID, err)
			}
		}
		for _, w := range p.SortedWeapons() {
			if _, err := weaponStmt.Exec(p.PlayerID, w); err != nil {
				return err
			}
		}
		for _, ag := range p.SortedAgeGroups() {
			if _, err := ageStmt.Exec(p.PlayerID, ag); err != nil {
				return err
			}
		}
		for season, c := range p.PodiumBySeason {
			_, err = podiumStmt.Exec(p.PlayerID, season, c.Gold, c.Silver, c.Bronze, c.Top8, c.Total)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// playerColumns is the select list shared by the player readers.
const playerColumns = `
	player_id, name, name_en, name_en_verified, fie_id,
	fencingtracker_id, competition_count, record_count`

func scanPlayer(rows *sql.Rows) (*model.PlayerProfile, int, int, error) {
	p := model.NewPlayerProfile("", "")
	var verified, comps, recs int
	err := rows.Scan(&p.PlayerID, &p.Name, &p.NameEN, &verified,
		&p.FIEID, &p.FencingTrackerID, &comps, &recs)
	if err != nil {
		return nil, 0, 0, err
	}
	p.NameENVerified = verified != 0
	return p, comps, recs, nil
}

// PlayerRow is a player with the stored aggregate counts, for listings that
// do not need the raw records back.
type PlayerRow struct {
	*model.PlayerProfile
	CompetitionCount int
	RecordCount      int
}

func (db *DB) queryPlayers(query string, args ...any) ([]PlayerRow, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlayerRow
	for rows.Next() {
		p, comps, recs, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, PlayerRow{PlayerProfile: p, CompetitionCount: comps, RecordCount: recs})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, row := range out {
		if err := db.loadPlayerDetails(row.PlayerProfile); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (db *DB) loadPlayerDetails(p *model.PlayerProfile) error {
	rows, err := db.conn.Query(`
		SELECT team, team_id, team_en, first_seen, last_seen, competition_count
		FROM team_history WHERE player_id = ? ORDER BY seq`, p.PlayerID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		tr := &model.TeamRecord{}
		if err := rows.Scan(&tr.Team, &tr.TeamID, &tr.TeamEN,
			&tr.FirstSeen, &tr.LastSeen, &tr.CompetitionCount); err != nil {
			return err
		}
		p.TeamHistory = append(p.TeamHistory, tr)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	wrows, err := db.conn.Query("SELECT weapon FROM player_weapons WHERE player_id = ?", p.PlayerID)
	if err != nil {
		return err
	}
	defer wrows.Close()
	for wrows.Next() {
		var w string
		if err := wrows.Scan(&w); err != nil {
			return err
		}
		p.Weapons[w] = struct{}{}
	}
	if err := wrows.Err(); err != nil {
		return err
	}

	arows, err := db.conn.Query("SELECT age_group FROM player_age_groups WHERE player_id = ?", p.PlayerID)
	if err != nil {
		return err
	}
	defer arows.Close()
	for arows.Next() {
		var ag string
		if err := arows.Scan(&ag); err != nil {
			return err
		}
		p.AgeGroups[ag] = struct{}{}
	}
	if err := arows.Err(); err != nil {
		return err
	}

	prows, err := db.conn.Query(`
		SELECT season, gold, silver, bronze, top8, total
		FROM podiums WHERE player_id = ?`, p.PlayerID)
	if err != nil {
		return err
	}
	defer prows.Close()
	for prows.Next() {
		var season string
		c := &model.PodiumCounts{}
		if err := prows.Scan(&season, &c.Gold, &c.Silver, &c.Bronze, &c.Top8, &c.Total); err != nil {
			return err
		}
		p.PodiumBySeason[season] = c
	}
	return prows.Err()
}

// ListPlayers returns every stored player ordered by ID.
func (db *DB) ListPlayers() ([]PlayerRow, error) {
	return db.queryPlayers("SELECT " + playerColumns + " FROM players ORDER BY player_id")
}

// GetPlayer returns one player by exact ID, or nil when absent.
func (db *DB) GetPlayer(playerID string) (*PlayerRow, error) {
	rows, err := db.queryPlayers("SELECT "+playerColumns+" FROM players WHERE player_id = ?", playerID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// PlayersByName returns every identity stored under a Korean name, ordered
// by ID.
func (db *DB) PlayersByName(name string) ([]PlayerRow, error) {
	return db.queryPlayers(
		"SELECT "+playerColumns+" FROM players WHERE name = ? ORDER BY player_id", name)
}

// SearchPlayers returns players whose name, English name, or current team
// contains the query. With includeHistory, past teams match too.
func (db *DB) SearchPlayers(query string, includeHistory bool) ([]PlayerRow, error) {
	like := "%" + query + "%"
	if includeHistory {
		return db.queryPlayers(`
			SELECT DISTINCT `+playerColumns+` FROM players
			WHERE player_id IN (
				SELECT player_id FROM team_history WHERE team LIKE ?1 OR team_en LIKE ?1
			) OR name LIKE ?1 OR name_en LIKE ?1
			ORDER BY player_id`, like)
	}
	return db.queryPlayers(`
		SELECT `+playerColumns+` FROM players
		WHERE name LIKE ?1 OR name_en LIKE ?1 OR current_team LIKE ?1
		ORDER BY player_id`, like)
}

// AmbiguousNames returns names stored under more than one player ID.
func (db *DB) AmbiguousNames() ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT name FROM players GROUP BY name HAVING COUNT(1) > 1 ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// SaveOrganizations replaces the organization registry in one transaction.
func (db *DB) SaveOrganizations(all []*orgs.Organization) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM organizations"); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO organizations(
			org_id, name, name_en, name_en_verified, country, org_type,
			region, region_en, first_seen, last_seen, competition_count, player_count
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range all {
		_, err = stmt.Exec(
			o.OrgID, o.Name, o.NameEN, boolInt(o.NameENVerified), o.Country,
			string(o.Type), o.Region, o.RegionEN,
			o.FirstSeen, o.LastSeen, o.CompetitionCount, o.PlayerCount(),
		)
		if err != nil {
			return fmt.Errorf("insert organization %s: %w", o.OrgID, err)
		}
	}
	return tx.Commit()
}

// OrgRow is one stored organization, player membership reduced to a count.
type OrgRow struct {
	orgs.Organization
	PlayerTotal int
}

// ListOrganizations returns every stored organization ordered by ID.
func (db *DB) ListOrganizations() ([]OrgRow, error) {
	rows, err := db.conn.Query(`
		SELECT org_id, name, name_en, name_en_verified, country, org_type,
		       region, region_en, first_seen, last_seen, competition_count, player_count
		FROM organizations ORDER BY org_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrgRow
	for rows.Next() {
		var o OrgRow
		var verified int
		var typ string
		if err := rows.Scan(&o.OrgID, &o.Name, &o.NameEN, &verified, &o.Country, &typ,
			&o.Region, &o.RegionEN, &o.FirstSeen, &o.LastSeen,
			&o.CompetitionCount, &o.PlayerTotal); err != nil {
			return nil, err
		}
		o.NameENVerified = verified != 0
		o.Type = orgs.Type(typ)
		out = append(out, o)
	}
	return out, rows.Err()
}
