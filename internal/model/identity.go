package model

// Identity 学习者身份，仅在首次进入时创建
type Identity struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
