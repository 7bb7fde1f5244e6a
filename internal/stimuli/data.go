package stimuli

// CatchSounds are the stand-in symbols used for the stage 1 catch game.
// Real audio playback is the UI's concern; the engine only deals in symbols.
var CatchSounds = []string{"삐", "땡", "띵", "뚝", "탁"}

// PitchPairs vary on pitch.
var PitchPairs = []Pair{
	{Kind: PairPitch, First: "높은음 🎵", Second: "낮은음 🎶", Same: false},
	{Kind: PairPitch, First: "높은음 🎵", Second: "높은음 🎵", Same: true},
	{Kind: PairPitch, First: "중간음 🎼", Second: "낮은음 🎶", Same: false},
	{Kind: PairPitch, First: "중간음 🎼", Second: "중간음 🎼", Same: true},
}

// DurationPairs vary on length.
var DurationPairs = []Pair{
	{Kind: PairDuration, First: "짧은소리 ♪", Second: "긴소리 ♫♫♫", Same: false},
	{Kind: PairDuration, First: "긴소리 ♫♫♫", Second: "긴소리 ♫♫♫", Same: true},
	{Kind: PairDuration, First: "중간소리 ♪♪", Second: "짧은소리 ♪", Same: false},
	{Kind: PairDuration, First: "중간소리 ♪♪", Second: "중간소리 ♪♪", Same: true},
}

// WordPairs are minimal pairs graded by how subtle the difference is:
// easy pairs differ in a whole consonant, medium in one aspirated consonant,
// hard in a final consonant or vowel length.
var WordPairs = []Pair{
	{Kind: PairWord, First: "곰", Second: "공", Same: false, Difficulty: PairEasy},
	{Kind: PairWord, First: "차", Second: "자", Same: false, Difficulty: PairEasy},
	{Kind: PairWord, First: "밥", Second: "팝", Same: false, Difficulty: PairEasy},
	{Kind: PairWord, First: "물", Second: "불", Same: false, Difficulty: PairEasy},
	{Kind: PairWord, First: "집", Second: "집", Same: true, Difficulty: PairEasy},
	{Kind: PairWord, First: "책", Second: "책", Same: true, Difficulty: PairEasy},

	{Kind: PairWord, First: "가방", Second: "카방", Same: false, Difficulty: PairMedium},
	{Kind: PairWord, First: "다리", Second: "타리", Same: false, Difficulty: PairMedium},
	{Kind: PairWord, First: "바다", Second: "파다", Same: false, Difficulty: PairMedium},
	{Kind: PairWord, First: "고기", Second: "코기", Same: false, Difficulty: PairMedium},
	{Kind: PairWord, First: "사과", Second: "사과", Same: true, Difficulty: PairMedium},
	{Kind: PairWord, First: "나무", Second: "나무", Same: true, Difficulty: PairMedium},

	{Kind: PairWord, First: "빛", Second: "빗", Same: false, Difficulty: PairHard},
	{Kind: PairWord, First: "밤", Second: "밥", Same: false, Difficulty: PairHard},
	{Kind: PairWord, First: "눈", Second: "눈", Same: true, Difficulty: PairHard},
	{Kind: PairWord, First: "말", Second: "맘", Same: false, Difficulty: PairHard},
	{Kind: PairWord, First: "길", Second: "김", Same: false, Difficulty: PairHard},
	{Kind: PairWord, First: "꽃", Second: "꽃", Same: true, Difficulty: PairHard},
}

// WordChallenges is the identification word list: everyday words first,
// then less frequent ones, then rare compound terms.
var WordChallenges = []WordChallenge{
	{Word: "사과", Pronunciation: "sa-gwa", Category: WordCommon, Hint: "빨간색이나 초록색 과일"},
	{Word: "학교", Pronunciation: "hak-gyo", Category: WordCommon, Hint: "공부하는 곳"},
	{Word: "물", Pronunciation: "mul", Category: WordCommon, Hint: "투명하고 마실 수 있는 액체"},
	{Word: "바람", Pronunciation: "ba-ram", Category: WordCommon, Hint: "움직이는 공기"},
	{Word: "집", Pronunciation: "jip", Category: WordCommon, Hint: "살고 있는 장소"},
	{Word: "강아지", Pronunciation: "gang-a-ji", Category: WordCommon, Hint: "짖는 동물"},
	{Word: "고양이", Pronunciation: "go-yang-i", Category: WordCommon, Hint: "야옹 소리를 내는 동물"},
	{Word: "친구", Pronunciation: "chin-gu", Category: WordCommon, Hint: "함께 놀고 이야기하는 사람"},
	{Word: "가족", Pronunciation: "ga-jok", Category: WordCommon, Hint: "함께 사는 사람들"},
	{Word: "음식", Pronunciation: "eum-sik", Category: WordCommon, Hint: "먹을 수 있는 것"},
	{Word: "자동차", Pronunciation: "ja-dong-cha", Category: WordCommon, Hint: "길을 달리는 탈 것"},
	{Word: "전화", Pronunciation: "jeon-hwa", Category: WordCommon, Hint: "통화하는 기계"},
	{Word: "책", Pronunciation: "chaek", Category: WordCommon, Hint: "읽을 수 있는 종이"},
	{Word: "연필", Pronunciation: "yeon-pil", Category: WordCommon, Hint: "글씨를 쓰는 도구"},
	{Word: "의자", Pronunciation: "ui-ja", Category: WordCommon, Hint: "앉을 수 있는 가구"},
	{Word: "테이블", Pronunciation: "te-i-beul", Category: WordCommon, Hint: "음식을 먹는 평평한 곳"},
	{Word: "창문", Pronunciation: "chang-mun", Category: WordCommon, Hint: "빛이 들어오는 유리"},
	{Word: "문", Pronunciation: "mun", Category: WordCommon, Hint: "방이나 건물에 있는 입구"},
	{Word: "손", Pronunciation: "son", Category: WordCommon, Hint: "손가락이 있는 신체 부위"},
	{Word: "발", Pronunciation: "bal", Category: WordCommon, Hint: "걷는 데 사용하는 신체 부위"},

	{Word: "컴퓨터", Pronunciation: "keom-pyu-teo", Category: WordIntermediate, Hint: "정보를 처리하는 전자 기기"},
	{Word: "도서관", Pronunciation: "do-seo-gwan", Category: WordIntermediate, Hint: "책을 빌리고 읽을 수 있는 곳"},
	{Word: "병원", Pronunciation: "byeong-won", Category: WordIntermediate, Hint: "아픈 사람이 치료받는 곳"},
	{Word: "은행", Pronunciation: "eun-haeng", Category: WordIntermediate, Hint: "돈을 관리하는 곳"},
	{Word: "시장", Pronunciation: "si-jang", Category: WordIntermediate, Hint: "물건을 사고파는 장소"},
	{Word: "식당", Pronunciation: "sik-dang", Category: WordIntermediate, Hint: "음식을 먹을 수 있는 곳"},
	{Word: "공항", Pronunciation: "gong-hang", Category: WordIntermediate, Hint: "비행기를 타고 내리는 곳"},
	{Word: "기차역", Pronunciation: "gi-cha-yeok", Category: WordIntermediate, Hint: "기차를 타고 내리는 곳"},
	{Word: "대학교", Pronunciation: "dae-hak-gyo", Category: WordIntermediate, Hint: "고등 교육을 받는 곳"},
	{Word: "회사", Pronunciation: "hoe-sa", Category: WordIntermediate, Hint: "일하는 장소"},
	{Word: "아파트", Pronunciation: "a-pa-teu", Category: WordIntermediate, Hint: "여러 가구가 사는 건물"},
	{Word: "마트", Pronunciation: "ma-teu", Category: WordIntermediate, Hint: "식료품을 사는 곳"},
	{Word: "카페", Pronunciation: "ka-pe", Category: WordIntermediate, Hint: "커피와 음료를 마시는 곳"},
	{Word: "영화관", Pronunciation: "yeong-hwa-gwan", Category: WordIntermediate, Hint: "영화를 보는 곳"},
	{Word: "체육관", Pronunciation: "che-yuk-gwan", Category: WordIntermediate, Hint: "운동할 수 있는 실내 공간"},

	{Word: "현대인", Pronunciation: "hyeon-dae-in", Category: WordAdvanced, Hint: "현대 사회에 살고 있는 사람"},
	{Word: "문화재", Pronunciation: "mun-hwa-jae", Category: WordAdvanced, Hint: "역사적, 예술적 가치가 있는 것"},
	{Word: "민주주의", Pronunciation: "min-ju-ju-ui", Category: WordAdvanced, Hint: "국민이 주인인 정치 체제"},
	{Word: "환경오염", Pronunciation: "hwan-gyeong-o-yeom", Category: WordAdvanced, Hint: "자연 환경이 더러워지는 현상"},
	{Word: "기후변화", Pronunciation: "gi-hu-byeon-hwa", Category: WordAdvanced, Hint: "지구 온도와 기후가 변하는 현상"},
	{Word: "인공지능", Pronunciation: "in-gong-ji-neung", Category: WordAdvanced, Hint: "사람처럼 생각하는 기계"},
	{Word: "양자역학", Pronunciation: "yang-ja-yeok-hak", Category: WordAdvanced, Hint: "아주 작은 세계의 물리학"},
	{Word: "나노기술", Pronunciation: "na-no-gi-sul", Category: WordAdvanced, Hint: "아주 작은 크기의 기술"},
	{Word: "생명공학", Pronunciation: "saeng-myeong-gong-hak", Category: WordAdvanced, Hint: "생명을 연구하고 응용하는 학문"},
}
