// Package labels carries the static field vocabularies of the USGS
// design maps service: machine field names mapped to human-readable
// descriptions. The four registries are independent and never mutated
// after process start.
package labels

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Request labels the envelope fields of the echoed request.
var Request = map[string]string{
	"date":              "Date",
	"referenceDocument": "Reference Document",
	"status":            "Status",
	"url":               "URL",
	"parameters":        "Parameters",
}

// Input labels the client-supplied query parameters.
var Input = map[string]string{
	"latitude":     "Latitude",
	"longitude":    "Longitude",
	"riskCategory": "Risk Category",
	"siteClass":    "Site Class",
	"title":        "Title",
}

// Descriptions labels the computed output parameters, spectrum series
// included.
var Descriptions = map[string]string{
	"pgauh": "Uniform Hazard PGA",
	"pgad":  "Deterministic Factored PGA",
	"pga":   "MCEr PGA",
	"fpga":  "Fa PGA",
	"pgam":  "Site Mod. PGA",
	"ssrt":  "Probabilistic Risk Targeted SS",
	"crs":   "Coefficent of Risk (0.2s)",
	"ssuh":  "Factored UH SS",
	"ssd":   "Factored Det. SS",
	"ss":    "Short Spectra (SS) MCEr",
	"fa":    "Short Spectra Fa Factor",
	"sms":   "Site-Modified SS (Sms)",
	"sds":   "Design Spectra (Sds)",
	"sdcs":  "Seismic Design Category via Sds",
	"s1rt":  "Probabilistic Risk Targeted S1",
	"cr1":   "Coefficient of risk (1.0s)",
	"s1uh":  "Factored UH S1",
	"s1d":   "Factored Det. S1",
	"s1":    "S1 MCEr",
	"fv":    "S1 Fv Factor",
	"sm1":   "Site-Modified S1 (Sm1)",
	"sd1":   "Design Spectra (Sd1)",
	"sdc1":  "Seismic Design Category via Sd1",
	"sdc":   "Seismic Design Category via Sds and Sd1",
	"tl":    "Long-period Transition, Tl (seconds)",
	"t-sub-l": "t-sub-l (DEPRECATED)",
	"cv":      "Vertical Coefficient (Cv)",
	"twoPeriodDesignSpectrum":   "Two Period Horizontal Design Spectrum",
	"twoPeriodMCErSpectrum":     "Two Period MCEr Spectrum",
	"verticalDesignSpectrum":    "Vertical Design Spectrum",
	"verticalMCErSpectrum":      "Vertical MCEr Spectrum",
	"multiPeriodDesignSpectrum": "Multi Period Design Spectrum",
	"multiPeriodMCErSpectrum":   "Multi Period MCEr Spectrum",
}

// Metadata labels the ancillary model fields of the response.
var Metadata = map[string]string{
	"modelVersion":               "Hazard Model Version",
	"spatialInterpolationMethod": "Spatial Interpolation Method",
	"ssMaxDirFactor":             "SS Max-Direction Factor",
	"s1MaxDirFactor":             "S1 Max-Direction Factor",
	"ssdPercentileFactor":        "SS Deterministic Percentile Factor",
	"s1dPercentileFactor":        "S1 Deterministic Percentile Factor",
	"pgadPercentileFactor":       "PGA Deterministic Percentile Factor",
	"ssdFloor":                   "SS Deterministic Floor",
	"s1dFloor":                   "S1 Deterministic Floor",
	"pgadFloor":                  "PGA Deterministic Floor",
}

// Describe returns the label for key from whichever registry carries
// it, falling back to a humanized form of the key itself. Intended for
// display surfaces like the verbose request echo; table decoration
// keeps the stricter drop policy of AppendOutputDescriptions.
func Describe(key string) string {
	for _, registry := range []map[string]string{Request, Input, Metadata, Descriptions} {
		if label, ok := registry[key]; ok {
			return label
		}
	}
	return Humanize(key)
}

// Humanize renders a camelCase field key as a title-cased phrase.
func Humanize(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return cases.Title(language.AmericanEnglish).String(b.String())
}
