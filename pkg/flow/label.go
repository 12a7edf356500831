// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flow

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// supportedLanguages holds the label languages; the first is the fallback.
var supportedLanguages = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

var regimeLabels = map[language.Tag]map[Regime]string{
	language.English: {
		RegimeLaminar:      "laminar",
		RegimeTransitional: "transitional",
		RegimeTurbulent:    "turbulent",
	},
	language.BrazilianPortuguese: {
		RegimeLaminar:      "laminar",
		RegimeTransitional: "transição",
		RegimeTurbulent:    "turbulento",
	},
}

// SupportedLanguages returns the languages regime labels are available in.
func SupportedLanguages() []language.Tag {
	out := make([]language.Tag, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// MatchLanguage picks the best supported language for the given tags.
// It returns fallback when nothing matches.
func MatchLanguage(fallback language.Tag, tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return supported(fallback)
	}
	_, idx, conf := languageMatcher.Match(tags...)
	if conf == language.No {
		return supported(fallback)
	}
	return supportedLanguages[idx]
}

// ParseAcceptLanguage picks the best supported language for an
// Accept-Language header value, returning fallback for empty or invalid input.
func ParseAcceptLanguage(header string, fallback language.Tag) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return supported(fallback)
	}
	return MatchLanguage(fallback, tags...)
}

// supported maps tag onto the closest supported language, defaulting to English.
func supported(tag language.Tag) language.Tag {
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return supportedLanguages[0]
	}
	return supportedLanguages[idx]
}

// Label returns the title-cased display name of the regime in the given language.
func (r Regime) Label(tag language.Tag) string {
	lang := supported(tag)
	name, ok := regimeLabels[lang][r]
	if !ok {
		name = string(r)
	}
	return cases.Title(lang).String(name)
}
