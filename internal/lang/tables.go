package lang

var sourceTokens = map[string]SourceCode{
	"ar":         SourceAR,
	"arabic":     SourceAR,
	"bg":         SourceBG,
	"bulgarian":  SourceBG,
	"cs":         SourceCS,
	"czech":      SourceCS,
	"da":         SourceDA,
	"danish":     SourceDA,
	"de":         SourceDE,
	"german":     SourceDE,
	"el":         SourceEL,
	"greek":      SourceEL,
	"en":         SourceEN,
	"english":    SourceEN,
	"es":         SourceES,
	"spanish":    SourceES,
	"et":         SourceET,
	"estonian":   SourceET,
	"fi":         SourceFI,
	"finnish":    SourceFI,
	"fr":         SourceFR,
	"french":     SourceFR,
	"hu":         SourceHU,
	"hungarian":  SourceHU,
	"id":         SourceID,
	"indonesian": SourceID,
	"it":         SourceIT,
	"italian":    SourceIT,
	"jp":         SourceJA,
	"ja":         SourceJA,
	"japanese":   SourceJA,
	"ko":         SourceKO,
	"korean":     SourceKO,
	"lt":         SourceLT,
	"lithuanian": SourceLT,
	"lv":         SourceLV,
	"latvian":    SourceLV,
	"nb":         SourceNB,
	"norwegian":  SourceNB,
	"nl":         SourceNL,
	"dutch":      SourceNL,
	"pl":         SourcePL,
	"polish":     SourcePL,
	"pt":         SourcePT,
	"portuguese": SourcePT,
	"ro":         SourceRO,
	"romanian":   SourceRO,
	"ru":         SourceRU,
	"russian":    SourceRU,
	"sk":         SourceSK,
	"slovak":     SourceSK,
	"sl":         SourceSL,
	"slovenian":  SourceSL,
	"sv":         SourceSV,
	"swedish":    SourceSV,
	"tr":         SourceTR,
	"turkish":    SourceTR,
	"uk":         SourceUK,
	"ukrainian":  SourceUK,
	"zh":         SourceZH,
	"chinese":    SourceZH,
}

var targetTokens = map[string]TargetCode{
	"ar":         TargetAR,
	"arabic":     TargetAR,
	"bg":         TargetBG,
	"bulgarian":  TargetBG,
	"cs":         TargetCS,
	"czech":      TargetCS,
	"da":         TargetDA,
	"danish":     TargetDA,
	"de":         TargetDE,
	"german":     TargetDE,
	"el":         TargetEL,
	"greek":      TargetEL,
	"en":         TargetEN,
	"english":    TargetEN,
	"en-gb":      TargetEnGB,
	"en-us":      TargetEnUS,
	"es":         TargetES,
	"spanish":    TargetES,
	"et":         TargetET,
	"estonian":   TargetET,
	"fi":         TargetFI,
	"finnish":    TargetFI,
	"fr":         TargetFR,
	"french":     TargetFR,
	"hu":         TargetHU,
	"hungarian":  TargetHU,
	"id":         TargetID,
	"indonesian": TargetID,
	"it":         TargetIT,
	"italian":    TargetIT,
	"jp":         TargetJA,
	"ja":         TargetJA,
	"japanese":   TargetJA,
	"ko":         TargetKO,
	"korean":     TargetKO,
	"lt":         TargetLT,
	"lithuanian": TargetLT,
	"lv":         TargetLV,
	"latvian":    TargetLV,
	"nb":         TargetNB,
	"norwegian":  TargetNB,
	"nl":         TargetNL,
	"dutch":      TargetNL,
	"pl":         TargetPL,
	"polish":     TargetPL,
	"pt":         TargetPT,
	"portuguese": TargetPT,
	"pt-br":      TargetPtBR,
	"pt-pt":      TargetPtPT,
	"ro":         TargetRO,
	"romanian":   TargetRO,
	"ru":         TargetRU,
	"russian":    TargetRU,
	"sk":         TargetSK,
	"slovak":     TargetSK,
	"sl":         TargetSL,
	"slovenian":  TargetSL,
	"sv":         TargetSV,
	"swedish":    TargetSV,
	"tr":         TargetTR,
	"turkish":    TargetTR,
	"uk":         TargetUK,
	"ukrainian":  TargetUK,
	"zh":         TargetZH,
	"chinese":    TargetZH,
}

var sourceNames = map[SourceCode]string{
	SourceAR: "Arabic",
	SourceBG: "Bulgarian",
	SourceCS: "Czech",
	SourceDA: "Danish",
	SourceDE: "German",
	SourceEL: "Greek",
	SourceEN: "English",
	SourceES: "Spanish",
	SourceET: "Estonian",
	SourceFI: "Finnish",
	SourceFR: "French",
	SourceHU: "Hungarian",
	SourceID: "Indonesian",
	SourceIT: "Italian",
	SourceJA: "Japanese",
	SourceKO: "Korean",
	SourceLT: "Lithuanian",
	SourceLV: "Latvian",
	SourceNB: "Norwegian (Bokmål)",
	SourceNL: "Dutch",
	SourcePL: "Polish",
	SourcePT: "Portuguese",
	SourceRO: "Romanian",
	SourceRU: "Russian",
	SourceSK: "Slovak",
	SourceSL: "Slovenian",
	SourceSV: "Swedish",
	SourceTR: "Turkish",
	SourceUK: "Ukrainian",
	SourceZH: "Chinese",
}

var targetNames = map[TargetCode]string{
	TargetAR:   "Arabic",
	TargetBG:   "Bulgarian",
	TargetCS:   "Czech",
	TargetDA:   "Danish",
	TargetDE:   "German",
	TargetEL:   "Greek",
	TargetEN:   "English",
	TargetEnGB: "English (British)",
	TargetEnUS: "English (American)",
	TargetES:   "Spanish",
	TargetET:   "Estonian",
	TargetFI:   "Finnish",
	TargetFR:   "French",
	TargetHU:   "Hungarian",
	TargetID:   "Indonesian",
	TargetIT:   "Italian",
	TargetJA:   "Japanese",
	TargetKO:   "Korean",
	TargetLT:   "Lithuanian",
	TargetLV:   "Latvian",
	TargetNB:   "Norwegian (Bokmål)",
	TargetNL:   "Dutch",
	TargetPL:   "Polish",
	TargetPT:   "Portuguese",
	TargetPtBR: "Portuguese (Brazilian)",
	TargetPtPT: "Portuguese (Other)",
	TargetRO:   "Romanian",
	TargetRU:   "Russian",
	TargetSK:   "Slovak",
	TargetSL:   "Slovenian",
	TargetSV:   "Swedish",
	TargetTR:   "Turkish",
	TargetUK:   "Ukrainian",
	TargetZH:   "Chinese (simplified)",
}
