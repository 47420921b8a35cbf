package parser_test

import "strconv"

func fmtMonthDay(month, day int) string {
	return strconv.Itoa(month) + "월 " + strconv.Itoa(day) + "일"
}
