package command

// ExampleCommands are sample requests shown to new users.
var ExampleCommands = []string{
	"8월 8일에 우리 가족과 만나는 일정을 캘린더에 추가해줘",
	"내일 오후 2시에 친구와 만나기",
	"다음주 월요일에 팀 미팅",
	"오늘 저녁 7시에 가족과 저녁 식사",
	"토요일 오후에 영화 보기",
}
