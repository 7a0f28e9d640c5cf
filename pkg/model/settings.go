package model

// Stats is the incrementally-maintained aggregate on the settings record.
type Stats struct {
	KarmaScore         int `json:"karmaScore"`
	TotalFocusMinutes  int `json:"totalFocusMinutes"`
	Level              int `json:"level"`
	CompletedTaskCount int `json:"completedTaskCount"`
}

// AppSettings is the singleton settings record.
type AppSettings struct {
	UserName   string `json:"userName,omitempty"`
	Theme      string `json:"theme,omitempty"`
	ThemeColor string `json:"themeColor,omitempty"`
	Stats      Stats  `json:"stats"`
}
