package orgs

// typeKeywords drive organization-type detection. Detection checks the
// types in priority order (university before high school before middle
// school and so on) so the more specific label wins: "체육대학교" must read
// as a university, not a high school.
var typeKeywords = []struct {
	typ      Type
	keywords []string
}{
	{TypeUniversity, []string{"대학교", "대학", "대"}},
	{TypeHighSchool, []string{
		"고등학교", "고등", "여고", "남고", "체육고", "예술고", "과학고",
		"외고", "국제고", "자사고", "특목고", "고",
	}},
	{TypeMiddleSchool, []string{"중학교", "중학", "여중", "남중", "중"}},
	{TypeProfessional, []string{
		"시청", "군청", "구청", "도청", "체육회",
		"공사", "공단", "은행", "보험", "증권", "카드",
		"전력", "가스", "통신", "철도", "항공",
		"삼성", "현대", "LG", "SK", "롯데", "포스코", "KT", "CJ",
	}},
	{TypeNational, []string{"국가대표", "대표팀", "협회", "연맹"}},
	{TypeClub, []string{
		"클럽", "펜싱클럽", "펜싱", "스포츠클럽", "FC", "SC",
		"아카데미", "도장", "체육관", "센터", "랩", "LAB",
	}},
}

// orgTerms translate organization-type words when building an English name.
// Longer keys are applied first so "여자중학교" never degrades into
// "여자 Middle School".
var orgTerms = map[string]string{
	"중학교":      "Middle School",
	"여자중학교":    "Girls' Middle School",
	"남자중학교":    "Boys' Middle School",
	"고등학교":     "High School",
	"여자고등학교":   "Girls' High School",
	"남자고등학교":   "Boys' High School",
	"체육고등학교":   "Sports High School",
	"예술고등학교":   "Arts High School",
	"과학고등학교":   "Science High School",
	"외국어고등학교":  "Foreign Language High School",
	"산업고등학교":   "Technical High School",
	"원예고등학교":   "Horticultural High School",
	"대학교":      "University",
	"대학":       "University",
	"광역시청":     "Metropolitan City Hall",
	"광역시":      "Metropolitan City",
	"특별시청":     "Special City Hall",
	"특별시":      "Special City",
	"시청":       "City Hall",
	"군청":       "County Office",
	"구청":       "District Office",
	"도청":       "Provincial Office",
	"체육회":      "Sports Council",
	"펜싱클럽":     "Fencing Club",
	"클럽":       "Club",
	"스포츠클럽":    "Sports Club",
	"아카데미":     "Academy",
	"센터":       "Center",
	"협회":       "Association",
	"연맹":       "Federation",
	"주니어펜싱클럽":  "Junior Fencing Club",
	"거점스포츠클럽":  "Regional Sports Club",
}

// regions maps Korean place names (and a few recurring school-name words)
// to their English renderings. Used both for region tagging and for the
// first replacement step of English name building.
var regions = map[string]string{
	"서울": "Seoul", "부산": "Busan", "대구": "Daegu", "인천": "Incheon",
	"광주": "Gwangju", "대전": "Daejeon", "울산": "Ulsan", "세종": "Sejong",

	"경기": "Gyeonggi", "강원": "Gangwon", "충북": "Chungbuk", "충남": "Chungnam",
	"전북": "Jeonbuk", "전남": "Jeonnam", "경북": "Gyeongbuk", "경남": "Gyeongnam",
	"제주": "Jeju",

	"수원": "Suwon", "성남": "Seongnam", "용인": "Yongin", "고양": "Goyang",
	"안양": "Anyang", "안산": "Ansan", "청주": "Cheongju", "천안": "Cheonan",
	"전주": "Jeonju", "포항": "Pohang", "창원": "Changwon", "김해": "Gimhae",
	"진주": "Jinju", "양산": "Yangsan", "구미": "Gumi", "경주": "Gyeongju",
	"거제": "Geoje", "통영": "Tongyeong", "사천": "Sacheon", "밀양": "Miryang",
	"목포": "Mokpo", "여수": "Yeosu", "순천": "Suncheon", "나주": "Naju",
	"광양": "Gwangyang", "군산": "Gunsan", "익산": "Iksan", "정읍": "Jeongeup",
	"남원": "Namwon", "김제": "Gimje", "완주": "Wanju", "안동": "Andong",
	"영주": "Yeongju", "영천": "Yeongcheon", "상주": "Sangju", "문경": "Mungyeong",
	"경산": "Gyeongsan", "칠곡": "Chilgok", "원주": "Wonju", "춘천": "Chuncheon",
	"강릉": "Gangneung", "동해": "Donghae", "태백": "Taebaek", "속초": "Sokcho",
	"삼척": "Samcheok", "홍천": "Hongcheon", "횡성": "Hoengseong", "영월": "Yeongwol",
	"평창": "Pyeongchang", "정선": "Jeongseon", "철원": "Cheorwon", "화천": "Hwacheon",
	"양구": "Yanggu", "인제": "Inje", "고성": "Goseong", "양양": "Yangyang",
	"충주": "Chungju", "제천": "Jecheon", "보은": "Boeun", "옥천": "Okcheon",
	"영동": "Yeongdong", "증평": "Jeungpyeong", "진천": "Jincheon", "괴산": "Goesan",
	"음성": "Eumseong", "단양": "Danyang", "공주": "Gongju", "보령": "Boryeong",
	"아산": "Asan", "서산": "Seosan", "논산": "Nonsan", "계룡": "Gyeryong",
	"당진": "Dangjin", "금산": "Geumsan", "부여": "Buyeo", "서천": "Seocheon",
	"청양": "Cheongyang", "홍성": "Hongseong", "예산": "Yesan", "태안": "Taean",
	"서귀포": "Seogwipo",

	"강남": "Gangnam", "강동": "Gangdong", "강북": "Gangbuk", "강서": "Gangseo",
	"관악": "Gwanak", "광진": "Gwangjin", "구로": "Guro", "금천": "Geumcheon",
	"노원": "Nowon", "도봉": "Dobong", "동대문": "Dongdaemun", "동작": "Dongjak",
	"마포": "Mapo", "서대문": "Seodaemun", "서초": "Seocho", "성동": "Seongdong",
	"성북": "Seongbuk", "송파": "Songpa", "양천": "Yangcheon", "영등포": "Yeongdeungpo",
	"용산": "Yongsan", "은평": "Eunpyeong", "종로": "Jongno", "중구": "Jung-gu",
	"중랑": "Jungnang",

	"호성": "Hoseong", "제일": "Jeil", "동래": "Dongnae", "원예": "Wonye",
	"신언": "Sineon", "경덕": "Gyeongdeok", "목동": "Mokdong", "압구정": "Apgujeong",
	"송도": "Songdo", "최병철": "Choibyeongcheol",
}

// verifiedOrgs are hand-checked English names. A hit here also pins the
// organization type.
var verifiedOrgs = map[string]struct {
	NameEN string
	Type   Type
}{
	"서울대학교":    {"Seoul National University", TypeUniversity},
	"연세대학교":    {"Yonsei University", TypeUniversity},
	"고려대학교":    {"Korea University", TypeUniversity},
	"한국체육대학교":  {"Korea National Sport University", TypeUniversity},
	"중앙대학교":    {"Chung-Ang University", TypeUniversity},
	"성균관대학교":   {"Sungkyunkwan University", TypeUniversity},
	"단국대학교":    {"Dankook University", TypeUniversity},
	"원광대학교":    {"Wonkwang University", TypeUniversity},
	"호원대학교":    {"Howon University", TypeUniversity},
	"용인대학교":    {"Yongin University", TypeUniversity},
	"경희대학교":    {"Kyung Hee University", TypeUniversity},
	"한양대학교":    {"Hanyang University", TypeUniversity},
	"동국대학교":    {"Dongguk University", TypeUniversity},
	"건국대학교":    {"Konkuk University", TypeUniversity},
	"인하대학교":    {"Inha University", TypeUniversity},
	"부산대학교":    {"Pusan National University", TypeUniversity},
	"경북대학교":    {"Kyungpook National University", TypeUniversity},
	"전남대학교":    {"Chonnam National University", TypeUniversity},
	"충남대학교":    {"Chungnam National University", TypeUniversity},
	"전북대학교":    {"Jeonbuk National University", TypeUniversity},
	"강원대학교":    {"Kangwon National University", TypeUniversity},
	"제주대학교":    {"Jeju National University", TypeUniversity},

	"서울체육고등학교": {"Seoul Sports High School", TypeHighSchool},
	"부산체육고등학교": {"Busan Sports High School", TypeHighSchool},
	"대구체육고등학교": {"Daegu Sports High School", TypeHighSchool},
	"인천체육고등학교": {"Incheon Sports High School", TypeHighSchool},
	"광주체육고등학교": {"Gwangju Sports High School", TypeHighSchool},
	"대전체육고등학교": {"Daejeon Sports High School", TypeHighSchool},
	"울산체육고등학교": {"Ulsan Sports High School", TypeHighSchool},
	"경기체육고등학교": {"Gyeonggi Sports High School", TypeHighSchool},
	"강원체육고등학교": {"Gangwon Sports High School", TypeHighSchool},
	"충북체육고등학교": {"Chungbuk Sports High School", TypeHighSchool},
	"충남체육고등학교": {"Chungnam Sports High School", TypeHighSchool},
	"전북체육고등학교": {"Jeonbuk Sports High School", TypeHighSchool},
	"전남체육고등학교": {"Jeonnam Sports High School", TypeHighSchool},
	"경북체육고등학교": {"Gyeongbuk Sports High School", TypeHighSchool},
	"경남체육고등학교": {"Gyeongnam Sports High School", TypeHighSchool},
	"제주체육고등학교": {"Jeju Sports High School", TypeHighSchool},

	"서울시청":  {"Seoul City Hall", TypeProfessional},
	"부산시청":  {"Busan City Hall", TypeProfessional},
	"부산광역시청": {"Busan Metropolitan City Hall", TypeProfessional},
	"대전시청":  {"Daejeon City Hall", TypeProfessional},
	"울산시청":  {"Ulsan City Hall", TypeProfessional},
	"경기도청":  {"Gyeonggi Province", TypeProfessional},
	"충남도청":  {"Chungnam Province", TypeProfessional},

	"최병철펜싱클럽":      {"Choi Byeongcheol Fencing Club", TypeClub},
	"송도펜싱클럽":       {"Songdo Fencing Club", TypeClub},
	"서울시주니어펜싱클럽":   {"Seoul Junior Fencing Club", TypeClub},
	"목동펜싱클럽":       {"Mokdong Fencing Club", TypeClub},
	"압구정펜싱클럽":      {"Apgujeong Fencing Club", TypeClub},
	"AXIOM 펜싱 랩":    {"AXIOM Fencing Lab", TypeClub},
	"FENCINGLAB(펜싱랩)": {"Fencing Lab", TypeClub},
	"양구군청펜싱클럽":     {"Yanggu County Fencing Club", TypeClub},
	"(사)부산펜싱클럽":    {"Busan Fencing Club", TypeClub},
	"비앤케이펜싱클럽":     {"B&K Fencing Club", TypeClub},
	"부산광역시거점스포츠클럽": {"Busan Regional Sports Club", TypeClub},

	"전주호성중학교": {"Jeonju Hoseong Middle School", TypeMiddleSchool},
	"신언중학교":   {"Sineon Middle School", TypeMiddleSchool},
	"경덕중학교":   {"Gyeongdeok Middle School", TypeMiddleSchool},

	"전주제일고등학교": {"Jeonju Jeil High School", TypeHighSchool},
	"울산산업고등학교": {"Ulsan Technical High School", TypeHighSchool},
	"동래원예고등학교": {"Dongnae Horticultural High School", TypeHighSchool},
}
