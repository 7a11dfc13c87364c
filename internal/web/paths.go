package web

// LearningModule is one step inside a learning path.
type LearningModule struct {
	Title     string
	Completed bool
}

// LearningPath is a curriculum track shown on the home page.
type LearningPath struct {
	Level       string
	Title       string
	Description string
	Modules     []LearningModule
	Progress    int
	Locked      bool
	LockMessage string
}

// LearningPaths is the static curriculum shown on the marketing page.
var LearningPaths = []LearningPath{
	{
		Level:       "초급자",
		Title:       "PartyRock 시작하기",
		Description: "AI와 PartyRock의 기본 개념을 익히고 첫 번째 앱을 만들어보세요.",
		Modules: []LearningModule{
			{Title: "생성형 AI 이해하기", Completed: true},
			{Title: "PartyRock 계정 만들기", Completed: true},
			{Title: "첫 번째 앱 만들기"},
			{Title: "위젯 활용법"},
		},
		Progress: 50,
	},
	{
		Level:       "중급자",
		Title:       "실무 활용하기",
		Description: "업무에 바로 적용할 수 있는 실용적인 AI 앱을 개발해보세요.",
		Modules: []LearningModule{
			{Title: "업무 자동화 도구 만들기"},
			{Title: "교육용 챗봇 개발"},
			{Title: "문서 분석 앱 제작"},
		},
		Locked:      true,
		LockMessage: "초급 과정 완료 필요",
	},
	{
		Level:       "전문가",
		Title:       "전문가 과정",
		Description: "복잡한 AI 워크플로우와 고급 기능을 마스터해보세요.",
		Modules: []LearningModule{
			{Title: "복잡한 워크플로우 설계"},
			{Title: "다중 위젯 연동"},
			{Title: "프롬프트 엔지니어링 고급"},
		},
		Locked:      true,
		LockMessage: "중급 과정 완료 필요",
	},
}
