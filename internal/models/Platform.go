package models

type Platform string

const (
	PlatformCodeforces Platform = "codeforces"
	PlatformCodechef   Platform = "codechef"
	PlatformLeetcode   Platform = "leetcode"
)

var Platforms = []Platform{PlatformCodeforces, PlatformCodechef, PlatformLeetcode}

var platformNames = map[Platform]string{
	PlatformCodeforces: "Codeforces",
	PlatformCodechef:   "CodeChef",
	PlatformLeetcode:   "LeetCode",
}

// ParsePlatform accepts only the closed set of supported platforms.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(s)
	_, ok := platformNames[p]
	return p, ok
}

func (p Platform) DisplayName() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return string(p)
}
