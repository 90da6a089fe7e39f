package storage

import (
	"testing"

	"github.com/fencekor/fenceid/internal/model"
	"github.com/fencekor/fenceid/internal/orgs"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCompetitionInsertAndExists(t *testing.T) {
	db := openMemDB(t)

	cs := model.CompetitionSummary{
		CompID:    "20240501",
		Name:      "전국펜싱선수권대회",
		StartDate: "2024-05-01",
		Records:   120,
	}
	if err := db.InsertCompetition(cs); err != nil {
		t.Fatalf("InsertCompetition: %v", err)
	}

	exists, err := db.CompetitionExists("20240501")
	if err != nil {
		t.Fatalf("CompetitionExists: %v", err)
	}
	if !exists {
		t.Error("expected competition to exist after insert")
	}
	if exists, _ := db.CompetitionExists("nope"); exists {
		t.Error("expected unknown competition to not exist")
	}

	list, err := db.ListCompetitions()
	if err != nil {
		t.Fatalf("ListCompetitions: %v", err)
	}
	if len(list) != 1 || list[0].Records != 120 {
		t.Errorf("unexpected listing: %+v", list)
	}
}

func TestRawRecordRoundTrip(t *testing.T) {
	db := openMemDB(t)

	records := []model.Appearance{
		{
			Name: "김민수", Team: "서울중학교", CompID: "C1", CompName: "대회",
			CompDate: "2023-04-10", EventName: "남자 에뻬 중등부",
			Weapon: "에뻬", AgeGroup: "중등부", Type: model.RecordPool,
		},
		{
			Name: "김민수", Team: "서울중학교", CompID: "C2", CompName: "대회",
			CompDate: "2023-10-05", EventName: "남자 에뻬 중등부",
			Weapon: "에뻬", AgeGroup: "중등부", Type: model.RecordRanking, Rank: 2,
		},
	}
	if err := db.InsertRawRecords(records); err != nil {
		t.Fatalf("InsertRawRecords: %v", err)
	}

	got, err := db.LoadRawRecords()
	if err != nil {
		t.Fatalf("LoadRawRecords: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[1].Type != model.RecordRanking || got[1].Rank != 2 {
		t.Errorf("ranking record mangled: %+v", got[1])
	}
	if got[0].Name != "김민수" || got[0].Weapon != "에뻬" {
		t.Errorf("pool record mangled: %+v", got[0])
	}
}

func testProfile() *model.PlayerProfile {
	p := model.NewPlayerProfile("KOP00001", "김민수")
	p.NameEN = "Minsu Kim"
	p.FIEID = "12345"
	p.AddTeam("서울중학교", "2023-04-10")
	p.AddTeam("서울고등학교", "2024-05-20")
	p.CompetitionIDs["C1"] = struct{}{}
	p.CompetitionIDs["C2"] = struct{}{}
	p.Weapons["에뻬"] = struct{}{}
	p.AgeGroups["중등부"] = struct{}{}
	p.AddPodium("2023", 1)
	p.Records = append(p.Records, model.Appearance{Name: "김민수"})
	return p
}

func TestSaveAndGetPlayer(t *testing.T) {
	db := openMemDB(t)

	if err := db.SavePlayers([]*model.PlayerProfile{testProfile()}); err != nil {
		t.Fatalf("SavePlayers: %v", err)
	}

	row, err := db.GetPlayer("KOP00001")
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if row == nil {
		t.Fatal("player not found after save")
	}
	p := row.PlayerProfile
	if p.Name != "김민수" || p.NameEN != "Minsu Kim" || p.FIEID != "12345" {
		t.Errorf("player fields mangled: %+v", p)
	}
	if len(p.TeamHistory) != 2 || p.TeamHistory[0].Team != "서울중학교" {
		t.Errorf("team history mangled: %+v", p.TeamHistory)
	}
	if p.CurrentTeam() != "서울고등학교" {
		t.Errorf("current team: got %q", p.CurrentTeam())
	}
	if _, ok := p.Weapons["에뻬"]; !ok {
		t.Error("weapon not restored")
	}
	if c := p.PodiumBySeason["2023"]; c == nil || c.Gold != 1 {
		t.Errorf("podium not restored: %+v", c)
	}
	if row.CompetitionCount != 2 || row.RecordCount != 1 {
		t.Errorf("aggregate counts wrong: %+v", row)
	}

	if missing, err := db.GetPlayer("KOP99999"); err != nil || missing != nil {
		t.Errorf("unknown player: got %+v, %v", missing, err)
	}
}

func TestSavePlayersReplacesPreviousGeneration(t *testing.T) {
	db := openMemDB(t)

	if err := db.SavePlayers([]*model.PlayerProfile{testProfile()}); err != nil {
		t.Fatalf("SavePlayers: %v", err)
	}
	other := model.NewPlayerProfile("KOP00002", "이영희")
	other.AddTeam("부산여자고등학교", "2023-05-10")
	if err := db.SavePlayers([]*model.PlayerProfile{other}); err != nil {
		t.Fatalf("SavePlayers second generation: %v", err)
	}

	rows, err := db.ListPlayers()
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}
	if len(rows) != 1 || rows[0].PlayerID != "KOP00002" {
		t.Errorf("old generation must be dropped, got %+v", rows)
	}
}

func TestPlayersByNameAndAmbiguous(t *testing.T) {
	db := openMemDB(t)

	a := model.NewPlayerProfile("KOP00001", "박지훈")
	a.AddTeam("서울고등학교", "2024-05-01")
	b := model.NewPlayerProfile("KOP00002", "박지훈")
	b.AddTeam("부산고등학교", "2024-05-01")
	if err := db.SavePlayers([]*model.PlayerProfile{a, b}); err != nil {
		t.Fatalf("SavePlayers: %v", err)
	}

	rows, err := db.PlayersByName("박지훈")
	if err != nil {
		t.Fatalf("PlayersByName: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 identities, got %d", len(rows))
	}

	names, err := db.AmbiguousNames()
	if err != nil {
		t.Fatalf("AmbiguousNames: %v", err)
	}
	if len(names) != 1 || names[0] != "박지훈" {
		t.Errorf("expected [박지훈], got %v", names)
	}
}

func TestSearchPlayers(t *testing.T) {
	db := openMemDB(t)

	if err := db.SavePlayers([]*model.PlayerProfile{testProfile()}); err != nil {
		t.Fatalf("SavePlayers: %v", err)
	}

	rows, err := db.SearchPlayers("민수", false)
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("name search: expected 1 hit, got %d", len(rows))
	}

	rows, _ = db.SearchPlayers("서울중학교", false)
	if len(rows) != 0 {
		t.Errorf("past team must not match without history, got %d hits", len(rows))
	}
	rows, _ = db.SearchPlayers("서울중학교", true)
	if len(rows) != 1 {
		t.Errorf("past team must match with history, got %d hits", len(rows))
	}
}

func TestOrganizationRoundTrip(t *testing.T) {
	db := openMemDB(t)

	reg := orgs.NewRegistry("KO")
	reg.RecordSighting("최병철펜싱클럽", "C1", "2023-04-10", "KOP00001")
	reg.RecordSighting("서울고등학교", "C2", "2024-05-20", "KOP00001")

	if err := db.SaveOrganizations(reg.All()); err != nil {
		t.Fatalf("SaveOrganizations: %v", err)
	}
	rows, err := db.ListOrganizations()
	if err != nil {
		t.Fatalf("ListOrganizations: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 orgs, got %d", len(rows))
	}
	var club *OrgRow
	for i := range rows {
		if rows[i].Name == "최병철펜싱클럽" {
			club = &rows[i]
		}
	}
	if club == nil {
		t.Fatal("club not stored")
	}
	if club.Type != orgs.TypeClub || !club.NameENVerified || club.PlayerTotal != 1 {
		t.Errorf("club row mangled: %+v", club)
	}
}
