package resolver

import (
	"testing"

	"github.com/fencekor/fenceid/internal/classify"
	"github.com/fencekor/fenceid/internal/model"
)

// app builds one appearance record, deriving weapon and age group from the
// event name the same way ingestion does.
func app(name, team, compID, date, event string) model.Appearance {
	return model.Appearance{
		Name:      name,
		Team:      team,
		CompID:    compID,
		CompName:  "대회 " + compID,
		CompDate:  date,
		EventName: event,
		Weapon:    classify.Weapon(event),
		AgeGroup:  classify.AgeGroup(event),
		Type:      model.RecordPool,
	}
}

func resolve(t *testing.T, records ...model.Appearance) *Resolver {
	t.Helper()
	r := New("KO")
	r.AddRecords(records)
	r.ResolveIdentities()
	return r
}

func TestSchoolProgressionMerges(t *testing.T) {
	r := resolve(t,
		app("김민수", "서울중학교", "C1", "2023-04-10", "남자 에뻬 중등부"),
		app("김민수", "서울중학교", "C2", "2023-10-05", "남자 에뻬 중등부"),
		app("김민수", "서울고등학교", "C3", "2024-05-20", "남자 에뻬 고등부"),
	)
	profiles := r.PlayersByName("김민수")
	if len(profiles) != 1 {
		t.Fatalf("middle → high progression must merge into one person, got %d", len(profiles))
	}
	p := profiles[0]
	if got := p.CurrentTeam(); got != "서울고등학교" {
		t.Errorf("current team: want 서울고등학교, got %q", got)
	}
	if len(p.TeamHistory) != 2 {
		t.Errorf("want 2 teams in history, got %d", len(p.TeamHistory))
	}
	if p.TeamHistory[0].Team != "서울중학교" {
		t.Errorf("history must start with the first-seen team, got %q", p.TeamHistory[0].Team)
	}
	if r.HasDisambiguation("김민수") {
		t.Error("single person must not be flagged ambiguous")
	}
}

func TestGenderSplitsHomonyms(t *testing.T) {
	r := resolve(t,
		app("이영희", "서울고등학교", "C1", "2023-04-10", "남자 사브르 고등부"),
		app("이영희", "부산여자고등학교", "C2", "2023-05-10", "여자 사브르 고등부"),
	)
	profiles := r.PlayersByName("이영희")
	if len(profiles) != 2 {
		t.Fatalf("mixed-gender records must resolve to two people, got %d", len(profiles))
	}
	if !r.HasDisambiguation("이영희") {
		t.Error("homonym name must be flagged ambiguous")
	}
	for _, p := range profiles {
		if len(p.TeamHistory) != 1 {
			t.Errorf("%s: want 1 team, got %d", p.PlayerID, len(p.TeamHistory))
		}
	}
}

func TestSameCompetitionOverlapSplits(t *testing.T) {
	r := resolve(t,
		app("박지훈", "서울고등학교", "C1", "2024-05-01", "남자 에뻬 고등부"),
		app("박지훈", "부산고등학교", "C1", "2024-05-01", "남자 에뻬 고등부"),
	)
	profiles := r.PlayersByName("박지훈")
	if len(profiles) != 2 {
		t.Fatalf("two teams in one competition prove two people, got %d", len(profiles))
	}
}

func TestAgeRegressionSplitsWithinOneTeam(t *testing.T) {
	r := resolve(t,
		app("박지훈", "최병철펜싱클럽", "C1", "2023-06-01", "여자 에뻬 일반부"),
		app("박지훈", "최병철펜싱클럽", "C2", "2024-03-01", "여자 에뻬 여중"),
	)
	profiles := r.PlayersByName("박지훈")
	if len(profiles) != 2 {
		t.Fatalf("senior → middle-school regression must split, got %d profiles", len(profiles))
	}
	if profiles[0].PlayerID == profiles[1].PlayerID {
		t.Fatal("split identities must carry distinct IDs")
	}
	for _, p := range profiles {
		if !p.HasTeam("최병철펜싱클럽") {
			t.Errorf("%s: both halves keep the shared club", p.PlayerID)
		}
	}
}

func TestFoldedRecordsKeepDateOrderForAgeScan(t *testing.T) {
	// The senior-division record carries no gender marker and reaches the
	// female bucket only through team folding, after the later middle-school
	// record. The regression scan must still see it in date order.
	r := resolve(t,
		app("오세진", "수원여자중학교", "C1", "2019-05-01", "에뻬 일반부 단체전"),
		app("오세진", "수원여자중학교", "C2", "2021-05-01", "여자 에뻬 중등부"),
	)
	if got := len(r.PlayersByName("오세진")); got != 2 {
		t.Fatalf("senior → middle-school regression must split even when the senior record is folded by team, got %d profiles", got)
	}
}

func TestOneLevelDropTolerated(t *testing.T) {
	r := resolve(t,
		app("최수민", "한성고등학교", "C1", "2023-06-01", "남자 플러레 고등부"),
		app("최수민", "한성고등학교", "C2", "2023-09-01", "남자 플러레 중등부"),
	)
	if got := len(r.PlayersByName("최수민")); got != 1 {
		t.Fatalf("a one-level drop is label noise, not a split; got %d profiles", got)
	}
}

func TestSchoolAndClubStaySeparate(t *testing.T) {
	r := resolve(t,
		app("강동원", "서울고등학교", "C1", "2023-04-10", "남자 에뻬 고등부"),
		app("강동원", "서울시청", "C2", "2024-05-10", "남자 에뻬 일반부"),
	)
	if got := len(r.PlayersByName("강동원")); got != 2 {
		t.Fatalf("a school career and a club career never merge, got %d profiles", got)
	}
}

func TestClubTransferMergesWithinGap(t *testing.T) {
	r := resolve(t,
		app("한지민", "강남펜싱클럽", "C1", "2022-05-01", "여자 에뻬 일반부"),
		app("한지민", "송파펜싱클럽", "C2", "2024-04-01", "여자 에뻬 일반부"),
	)
	if got := len(r.PlayersByName("한지민")); got != 1 {
		t.Fatalf("club transfer inside a two-year gap merges, got %d profiles", got)
	}
}

func TestClubGapTooLargeSplits(t *testing.T) {
	r := resolve(t,
		app("한지민", "강남펜싱클럽", "C1", "2020-05-01", "여자 에뻬 일반부"),
		app("한지민", "송파펜싱클럽", "C2", "2024-04-01", "여자 에뻬 일반부"),
	)
	if got := len(r.PlayersByName("한지민")); got != 2 {
		t.Fatalf("a gap beyond two years does not merge clubs, got %d profiles", got)
	}
}

func TestConcurrentSameLevelSchoolsSplit(t *testing.T) {
	r := resolve(t,
		app("윤서연", "서울중학교", "C1", "2023-03-01", "여자 플러레 중등부"),
		app("윤서연", "대전중학교", "C2", "2023-05-01", "여자 플러레 중등부"),
		app("윤서연", "서울중학교", "C3", "2023-10-01", "여자 플러레 중등부"),
	)
	if got := len(r.PlayersByName("윤서연")); got != 2 {
		t.Fatalf("concurrent enrollment at two middle schools proves two people, got %d", got)
	}
}

func TestDisjointWeaponsSplit(t *testing.T) {
	r := resolve(t,
		app("정수빈", "서울중학교", "C1", "2023-04-01", "남자 에뻬 중등부"),
		app("정수빈", "부산중학교", "C2", "2024-04-01", "남자 플러레 중등부"),
	)
	if got := len(r.PlayersByName("정수빈")); got != 2 {
		t.Fatalf("teams with disjoint weapon sets never merge, got %d profiles", got)
	}
}

func TestTeamlessRecordsFoldIntoEarliestIdentity(t *testing.T) {
	r := resolve(t,
		app("김민수", "서울중학교", "C1", "2023-04-10", "남자 에뻬 중등부"),
		app("김민수", "", "C2", "2023-06-10", "남자 에뻬 중등부"),
	)
	profiles := r.PlayersByName("김민수")
	if len(profiles) != 1 {
		t.Fatalf("want 1 profile, got %d", len(profiles))
	}
	if got := len(profiles[0].Records); got != 2 {
		t.Errorf("teamless record must fold into the profile, got %d records", got)
	}
}

func TestSpecialIDAssignment(t *testing.T) {
	r := New("KO")
	r.AddRecords([]model.Appearance{
		app("박소윤", "최병철펜싱클럽", "C1", "2023-04-10", "여자 사브르 일반부"),
		app("박소윤", "최병철펜싱클럽", "C2", "2023-09-10", "여자 사브르 일반부"),
	})
	if n := r.ResolveIdentities(); n != 1 {
		t.Fatalf("want 1 special ID assignment, got %d", n)
	}
	p := r.PlayerByID("KOP00000")
	if p == nil {
		t.Fatal("pinned ID KOP00000 must be assigned")
	}
	if p.Name != "박소윤" {
		t.Errorf("KOP00000: want 박소윤, got %q", p.Name)
	}
	ids := r.nameToProfiles["박소윤"]
	if len(ids) != 1 || ids[0] != "KOP00000" {
		t.Errorf("name index must follow the re-key, got %v", ids)
	}
}

func TestResolutionIsDeterministic(t *testing.T) {
	records := []model.Appearance{
		app("김민수", "서울중학교", "C1", "2023-04-10", "남자 에뻬 중등부"),
		app("김민수", "서울고등학교", "C2", "2024-05-20", "남자 에뻬 고등부"),
		app("이영희", "서울고등학교", "C1", "2023-04-10", "남자 사브르 고등부"),
		app("이영희", "부산여자고등학교", "C2", "2024-05-20", "여자 사브르 고등부"),
		app("박지훈", "서울고등학교", "C3", "2024-06-01", "남자 에뻬 고등부"),
		app("박지훈", "부산고등학교", "C3", "2024-06-01", "남자 에뻬 고등부"),
	}

	first := resolve(t, records...)
	snapshot := make(map[string]string)
	for _, p := range first.Profiles() {
		snapshot[p.PlayerID] = p.Name + "/" + p.CurrentTeam()
	}

	// Re-resolving the same resolver and resolving a fresh one must both
	// reproduce the exact ID assignment.
	first.ResolveIdentities()
	second := resolve(t, records...)
	for _, r := range []*Resolver{first, second} {
		if got := len(r.Profiles()); got != len(snapshot) {
			t.Fatalf("profile count drifted: want %d, got %d", len(snapshot), got)
		}
		for _, p := range r.Profiles() {
			if want := snapshot[p.PlayerID]; want != p.Name+"/"+p.CurrentTeam() {
				t.Errorf("%s: want %q, got %q", p.PlayerID, want, p.Name+"/"+p.CurrentTeam())
			}
		}
	}
}

func TestGenderBucketsNeverMix(t *testing.T) {
	r := resolve(t,
		app("이영희", "서울여자고등학교", "C1", "2023-04-10", "여자 사브르 고등부"),
		app("이영희", "서울여자고등학교", "C2", "2023-06-10", "사브르 고등부 단체전"),
		app("이영희", "대전고등학교", "C3", "2023-08-10", "남자 사브르 고등부"),
	)
	for _, p := range r.PlayersByName("이영희") {
		male, female := false, false
		for _, rec := range p.Records {
			switch classify.Gender(rec.EventName) {
			case model.GenderMale:
				male = true
			case model.GenderFemale:
				female = true
			}
		}
		if male && female {
			t.Errorf("%s mixes male and female records", p.PlayerID)
		}
	}
}

func TestPodiumAggregation(t *testing.T) {
	gold := app("김민수", "서울중학교", "C1", "2023-04-10", "남자 에뻬 중등부")
	gold.Type = model.RecordRanking
	gold.Rank = 1
	bronze := app("김민수", "서울중학교", "C2", "2023-10-10", "남자 에뻬 중등부")
	bronze.Type = model.RecordRanking
	bronze.Rank = 3
	fifth := app("김민수", "서울중학교", "C3", "2024-03-10", "남자 에뻬 중등부")
	fifth.Type = model.RecordRanking
	fifth.Rank = 5

	r := resolve(t, gold, bronze, fifth)
	p := r.PlayersByName("김민수")[0]

	c23 := p.PodiumBySeason["2023"]
	if c23 == nil || c23.Gold != 1 || c23.Bronze != 1 {
		t.Fatalf("2023 podium: want 1 gold 1 bronze, got %+v", c23)
	}
	c24 := p.PodiumBySeason["2024"]
	if c24 == nil || c24.Top8 != 1 {
		t.Fatalf("2024 podium: want 1 top8, got %+v", c24)
	}
}

func TestSearchPlayers(t *testing.T) {
	r := resolve(t,
		app("김민수", "서울중학교", "C1", "2023-04-10", "남자 에뻬 중등부"),
		app("김민수", "서울고등학교", "C2", "2024-05-20", "남자 에뻬 고등부"),
	)
	if got := len(r.SearchPlayers("민수", false)); got != 1 {
		t.Errorf("name substring search: want 1 hit, got %d", got)
	}
	if got := len(r.SearchPlayers("서울중학교", false)); got != 0 {
		t.Errorf("past team must not match without history, got %d hits", got)
	}
	if got := len(r.SearchPlayers("서울중학교", true)); got != 1 {
		t.Errorf("past team must match with history, got %d hits", got)
	}
	if got := len(r.SearchPlayers("", true)); got != 0 {
		t.Errorf("empty query matches nothing, got %d hits", got)
	}
}

func TestExportDocument(t *testing.T) {
	r := resolve(t,
		app("이영희", "서울고등학교", "C1", "2023-04-10", "남자 사브르 고등부"),
		app("이영희", "부산여자고등학교", "C2", "2023-05-10", "여자 사브르 고등부"),
	)
	doc := r.Export()
	if len(doc.Profiles) != 2 {
		t.Fatalf("want 2 exported profiles, got %d", len(doc.Profiles))
	}
	if len(doc.NameIndex["이영희"]) != 2 {
		t.Errorf("name index: want 2 IDs, got %v", doc.NameIndex["이영희"])
	}
	if len(doc.AmbiguousNames) != 1 || doc.AmbiguousNames[0] != "이영희" {
		t.Errorf("ambiguous names: want [이영희], got %v", doc.AmbiguousNames)
	}
	for id, ep := range doc.Profiles {
		if ep.PlayerID != id {
			t.Errorf("profile keyed %s carries ID %s", id, ep.PlayerID)
		}
		if ep.RecordCount != 1 {
			t.Errorf("%s: want 1 record, got %d", id, ep.RecordCount)
		}
	}
}

func TestExportResolvesPendingRecords(t *testing.T) {
	r := resolve(t,
		app("김민수", "서울중학교", "C1", "2023-04-10", "남자 에뻬 중등부"),
	)
	r.AddRecords([]model.Appearance{
		app("이영희", "부산여자고등학교", "C2", "2023-05-10", "여자 사브르 고등부"),
	})

	doc := r.Export()
	if len(doc.Profiles) != 2 {
		t.Fatalf("export must resolve records added since the last run, got %d profiles", len(doc.Profiles))
	}
	if len(doc.NameIndex["이영희"]) != 1 {
		t.Errorf("pending record missing from name index: %v", doc.NameIndex)
	}
}

type stubOrgDir struct{ calls int }

func (d *stubOrgDir) GetOrCreateOrganization(name string) (OrgInfo, error) {
	d.calls++
	return OrgInfo{OrgID: "KOX0001", NameEN: "Stub Org"}, nil
}

type stubNameDir struct{}

func (stubNameDir) EnglishName(name string) (EnglishName, bool) {
	if name == "김민수" {
		return EnglishName{FullName: "Minsu Kim", Verified: true, FIEID: "12345"}, true
	}
	return EnglishName{}, false
}

func TestEnrichment(t *testing.T) {
	r := resolve(t,
		app("김민수", "서울중학교", "C1", "2023-04-10", "남자 에뻬 중등부"),
	)
	orgDir := &stubOrgDir{}
	if n := r.PopulateTeamInfo(orgDir); n != 1 {
		t.Fatalf("want 1 team enriched, got %d", n)
	}
	if orgDir.calls != 1 {
		t.Errorf("want 1 directory call, got %d", orgDir.calls)
	}
	if n := r.PopulateEnglishNames(stubNameDir{}); n != 1 {
		t.Fatalf("want 1 name enriched, got %d", n)
	}
	p := r.PlayersByName("김민수")[0]
	if p.TeamHistory[0].TeamID != "KOX0001" {
		t.Errorf("team ID not stamped: %+v", p.TeamHistory[0])
	}
	if p.NameEN != "Minsu Kim" || !p.NameENVerified || p.FIEID != "12345" {
		t.Errorf("english name not stamped: %+v", p)
	}
}

func TestFindAgeRegressionSplit(t *testing.T) {
	recs := []model.Appearance{
		app("x", "t", "C1", "2023-01-01", "여자 에뻬 일반부"),
		app("x", "t", "C2", "2023-06-01", "여자 에뻬 고등부"),
	}
	if _, ok := findAgeRegressionSplit(recs); !ok {
		t.Error("9 → 7 is a two-level drop and must split")
	}

	recs = []model.Appearance{
		app("x", "t", "C1", "2023-01-01", "여자 에뻬 고등부"),
		app("x", "t", "C2", "2023-06-01", "여자 에뻬 중등부"),
	}
	if date, ok := findAgeRegressionSplit(recs); ok {
		t.Errorf("7 → 6 is tolerated, split at %s", date)
	}
}

func TestPartitionByWeaponResidual(t *testing.T) {
	recs := []model.Appearance{
		app("x", "A중학교", "C1", "2023-01-01", "남자 에뻬 중등부"),
		app("x", "B중학교", "C2", "2023-02-01", "남자 플러레 중등부"),
		app("x", "", "C3", "2023-03-01", "중등부 단체전"),
	}
	parts := partitionByWeapon(recs)
	if len(parts) != 3 {
		t.Fatalf("two disjoint components plus a residual group, got %d", len(parts))
	}
}

func TestPartitionByGenderFoldsByTeam(t *testing.T) {
	recs := []model.Appearance{
		app("x", "A여자중학교", "C1", "2023-01-01", "여자 에뻬 중등부"),
		app("x", "A여자중학교", "C2", "2023-02-01", "에뻬 중등부 단체전"),
	}
	buckets := partitionByGender(recs)
	if len(buckets[model.GenderFemale]) != 2 {
		t.Errorf("unknown record must fold into the team's gendered bucket: %v", buckets)
	}
	if len(buckets[model.GenderUnknown]) != 0 {
		t.Errorf("unknown bucket must be empty after folding: %v", buckets)
	}
}
