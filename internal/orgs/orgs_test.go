package orgs

import "testing"

func TestDetectType(t *testing.T) {
	cases := []struct {
		name string
		want Type
	}{
		{"한국체육대학교", TypeUniversity},
		{"서울고등학교", TypeHighSchool},
		{"전주호성중학교", TypeMiddleSchool},
		{"서울시청", TypeProfessional},
		{"최병철펜싱클럽", TypeClub},
		{"펜싱연맹", TypeNational},
		{"???", TypeUnknown},
	}
	for _, c := range cases {
		if got := DetectType(c.name); got != c.want {
			t.Errorf("DetectType(%q): want %v, got %v", c.name, c.want, got)
		}
	}
}

func TestConvertToEnglish(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"서울대학교", "Seoul National University"}, // verified mapping
		{"서울중학교", "Seoul Middle School"},
		{"강남펜싱클럽", "Gangnam Fencing Club"},
		{"전주호성중학교", "Jeonju Hoseong Middle School"},
	}
	for _, c := range cases {
		if got := ConvertToEnglish(c.name); got != c.want {
			t.Errorf("ConvertToEnglish(%q): want %q, got %q", c.name, c.want, got)
		}
	}
}

func TestGetOrCreateMintsSequentialIDs(t *testing.T) {
	r := NewRegistry("KO")
	club := r.GetOrCreate("강남펜싱클럽")
	if club.OrgID != "KOC0001" {
		t.Errorf("first club: want KOC0001, got %s", club.OrgID)
	}
	if again := r.GetOrCreate("강남펜싱클럽"); again.OrgID != club.OrgID {
		t.Errorf("repeat lookup minted a new ID: %s", again.OrgID)
	}
	if second := r.GetOrCreate("송파펜싱클럽"); second.OrgID != "KOC0002" {
		t.Errorf("second club: want KOC0002, got %s", second.OrgID)
	}
	// Counters are tracked per type.
	if school := r.GetOrCreate("서울고등학교"); school.OrgID != "KOH0001" {
		t.Errorf("first high school: want KOH0001, got %s", school.OrgID)
	}
}

func TestVerifiedMappingPinsTypeAndName(t *testing.T) {
	r := NewRegistry("KO")
	org := r.GetOrCreate("최병철펜싱클럽")
	if !org.NameENVerified {
		t.Fatal("verified mapping must be flagged")
	}
	if org.NameEN != "Choi Byeongcheol Fencing Club" {
		t.Errorf("unexpected english name %q", org.NameEN)
	}
	if org.Type != TypeClub {
		t.Errorf("unexpected type %v", org.Type)
	}
}

func TestRecordSighting(t *testing.T) {
	r := NewRegistry("KO")
	r.RecordSighting("서울시청", "C1", "2023-05-01", "KOP00001")
	r.RecordSighting("서울시청", "C2", "2022-03-01", "KOP00002")
	r.RecordSighting("서울시청", "C2", "2022-03-01", "KOP00001")
	r.RecordSighting("서울시청", "C3", "2024-01-01", "KOP00001")

	org := r.ByName("서울시청")
	if org == nil {
		t.Fatal("org not registered")
	}
	if org.FirstSeen != "2022-03-01" || org.LastSeen != "2024-01-01" {
		t.Errorf("seen range wrong: %s .. %s", org.FirstSeen, org.LastSeen)
	}
	if org.CompetitionCount != 3 {
		t.Errorf("want 3 distinct competitions, got %d", org.CompetitionCount)
	}
	if org.PlayerCount() != 2 {
		t.Errorf("want 2 distinct players, got %d", org.PlayerCount())
	}
}

func TestSearchOrdersByPlayerCount(t *testing.T) {
	r := NewRegistry("KO")
	r.RecordSighting("강남펜싱클럽", "C1", "2023-01-01", "KOP00001")
	r.RecordSighting("송파펜싱클럽", "C1", "2023-01-01", "KOP00002")
	r.RecordSighting("송파펜싱클럽", "C2", "2023-02-01", "KOP00003")

	got := r.Search("펜싱클럽", 10)
	if len(got) != 2 {
		t.Fatalf("want 2 hits, got %d", len(got))
	}
	if got[0].Name != "송파펜싱클럽" {
		t.Errorf("busiest team first: got %s", got[0].Name)
	}
	if hits := r.Search("fencing club", 1); len(hits) != 1 {
		t.Errorf("english search with limit: want 1 hit, got %d", len(hits))
	}
}

func TestSummarize(t *testing.T) {
	r := NewRegistry("KO")
	r.GetOrCreate("서울대학교")
	r.GetOrCreate("강남펜싱클럽")
	r.GetOrCreate("서울고등학교")

	s := r.Summarize()
	if s.Total != 3 {
		t.Errorf("want 3 orgs, got %d", s.Total)
	}
	if s.ByType[TypeUniversity] != 1 || s.ByType[TypeClub] != 1 || s.ByType[TypeHighSchool] != 1 {
		t.Errorf("type counts wrong: %v", s.ByType)
	}
	if s.Verified != 1 {
		t.Errorf("want 1 verified org, got %d", s.Verified)
	}
}
