package util

import (
	"strconv"
	"strings"
)

// WordCount 以空白分隔的非空词数
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// MailboxLocalPart 去掉所有空白并转小写，用于派生 mbox
func MailboxLocalPart(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// ParseModuleID 解析路径中的模块ID，失败返回 -1
func ParseModuleID(s string) int {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return -1
	}
	return id
}
