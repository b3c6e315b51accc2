package dub

// Country is an ISO 3166-1 alpha-2 country code, plus XK for Kosovo.
type Country string

// Country codes accepted and returned by the analytics endpoints.
const (
	CountryAF Country = "AF"
	CountryAL Country = "AL"
	CountryDZ Country = "DZ"
	CountryAS Country = "AS"
	CountryAD Country = "AD"
	CountryAO Country = "AO"
	CountryAI Country = "AI"
	CountryAQ Country = "AQ"
	CountryAG Country = "AG"
	CountryAR Country = "AR"
	CountryAM Country = "AM"
	CountryAW Country = "AW"
	CountryAU Country = "AU"
	CountryAT Country = "AT"
	CountryAZ Country = "AZ"
	CountryBS Country = "BS"
	CountryBH Country = "BH"
	CountryBD Country = "BD"
	CountryBB Country = "BB"
	CountryBY Country = "BY"
	CountryBE Country = "BE"
	CountryBZ Country = "BZ"
	CountryBJ Country = "BJ"
	CountryBM Country = "BM"
	CountryBT Country = "BT"
	CountryBO Country = "BO"
	CountryBA Country = "BA"
	CountryBW Country = "BW"
	CountryBV Country = "BV"
	CountryBR Country = "BR"
	CountryIO Country = "IO"
	CountryBN Country = "BN"
	CountryBG Country = "BG"
	CountryBF Country = "BF"
	CountryBI Country = "BI"
	CountryKH Country = "KH"
	CountryCM Country = "CM"
	CountryCA Country = "CA"
	CountryCV Country = "CV"
	CountryKY Country = "KY"
	CountryCF Country = "CF"
	CountryTD Country = "TD"
	CountryCL Country = "CL"
	CountryCN Country = "CN"
	CountryCX Country = "CX"
	CountryCC Country = "CC"
	CountryCO Country = "CO"
	CountryKM Country = "KM"
	CountryCG Country = "CG"
	CountryCD Country = "CD"
	CountryCK Country = "CK"
	CountryCR Country = "CR"
	CountryCI Country = "CI"
	CountryHR Country = "HR"
	CountryCU Country = "CU"
	CountryCY Country = "CY"
	CountryCZ Country = "CZ"
	CountryDK Country = "DK"
	CountryDJ Country = "DJ"
	CountryDM Country = "DM"
	CountryDO Country = "DO"
	CountryEC Country = "EC"
	CountryEG Country = "EG"
	CountrySV Country = "SV"
	CountryGQ Country = "GQ"
	CountryER Country = "ER"
	CountryEE Country = "EE"
	CountryET Country = "ET"
	CountryFK Country = "FK"
	CountryFO Country = "FO"
	CountryFJ Country = "FJ"
	CountryFI Country = "FI"
	CountryFR Country = "FR"
	CountryGF Country = "GF"
	CountryPF Country = "PF"
	CountryTF Country = "TF"
	CountryGA Country = "GA"
	CountryGM Country = "GM"
	CountryGE Country = "GE"
	CountryDE Country = "DE"
	CountryGH Country = "GH"
	CountryGI Country = "GI"
	CountryGR Country = "GR"
	CountryGL Country = "GL"
	CountryGD Country = "GD"
	CountryGP Country = "GP"
	CountryGU Country = "GU"
	CountryGT Country = "GT"
	CountryGN Country = "GN"
	CountryGW Country = "GW"
	CountryGY Country = "GY"
	CountryHT Country = "HT"
	CountryHM Country = "HM"
	CountryVA Country = "VA"
	CountryHN Country = "HN"
	CountryHK Country = "HK"
	CountryHU Country = "HU"
	CountryIS Country = "IS"
	CountryIN Country = "IN"
	CountryID Country = "ID"
	CountryIR Country = "IR"
	CountryIQ Country = "IQ"
	CountryIE Country = "IE"
	CountryIL Country = "IL"
	CountryIT Country = "IT"
	CountryJM Country = "JM"
	CountryJP Country = "JP"
	CountryJO Country = "JO"
	CountryKZ Country = "KZ"
	CountryKE Country = "KE"
	CountryKI Country = "KI"
	CountryKP Country = "KP"
	CountryKR Country = "KR"
	CountryKW Country = "KW"
	CountryKG Country = "KG"
	CountryLA Country = "LA"
	CountryLV Country = "LV"
	CountryLB Country = "LB"
	CountryLS Country = "LS"
	CountryLR Country = "LR"
	CountryLY Country = "LY"
	CountryLI Country = "LI"
	CountryLT Country = "LT"
	CountryLU Country = "LU"
	CountryMO Country = "MO"
	CountryMG Country = "MG"
	CountryMW Country = "MW"
	CountryMY Country = "MY"
	CountryMV Country = "MV"
	CountryML Country = "ML"
	CountryMT Country = "MT"
	CountryMH Country = "MH"
	CountryMQ Country = "MQ"
	CountryMR Country = "MR"
	CountryMU Country = "MU"
	CountryYT Country = "YT"
	CountryMX Country = "MX"
	CountryFM Country = "FM"
	CountryMD Country = "MD"
	CountryMC Country = "MC"
	CountryMN Country = "MN"
	CountryMS Country = "MS"
	CountryMA Country = "MA"
	CountryMZ Country = "MZ"
	CountryMM Country = "MM"
	CountryNA Country = "NA"
	CountryNR Country = "NR"
	CountryNP Country = "NP"
	CountryNL Country = "NL"
	CountryNC Country = "NC"
	CountryNZ Country = "NZ"
	CountryNI Country = "NI"
	CountryNE Country = "NE"
	CountryNG Country = "NG"
	CountryNU Country = "NU"
	CountryNF Country = "NF"
	CountryMK Country = "MK"
	CountryMP Country = "MP"
	CountryNO Country = "NO"
	CountryOM Country = "OM"
	CountryPK Country = "PK"
	CountryPW Country = "PW"
	CountryPS Country = "PS"
	CountryPA Country = "PA"
	CountryPG Country = "PG"
	CountryPY Country = "PY"
	CountryPE Country = "PE"
	CountryPH Country = "PH"
	CountryPN Country = "PN"
	CountryPL Country = "PL"
	CountryPT Country = "PT"
	CountryPR Country = "PR"
	CountryQA Country = "QA"
	CountryRE Country = "RE"
	CountryRO Country = "RO"
	CountryRU Country = "RU"
	CountryRW Country = "RW"
	CountrySH Country = "SH"
	CountryKN Country = "KN"
	CountryLC Country = "LC"
	CountryPM Country = "PM"
	CountryVC Country = "VC"
	CountryWS Country = "WS"
	CountrySM Country = "SM"
	CountryST Country = "ST"
	CountrySA Country = "SA"
	CountrySN Country = "SN"
	CountrySC Country = "SC"
	CountrySL Country = "SL"
	CountrySG Country = "SG"
	CountrySK Country = "SK"
	CountrySI Country = "SI"
	CountrySB Country = "SB"
	CountrySO Country = "SO"
	CountryZA Country = "ZA"
	CountryGS Country = "GS"
	CountryES Country = "ES"
	CountryLK Country = "LK"
	CountrySD Country = "SD"
	CountrySR Country = "SR"
	CountrySJ Country = "SJ"
	CountrySZ Country = "SZ"
	CountrySE Country = "SE"
	CountryCH Country = "CH"
	CountrySY Country = "SY"
	CountryTW Country = "TW"
	CountryTJ Country = "TJ"
	CountryTZ Country = "TZ"
	CountryTH Country = "TH"
	CountryTL Country = "TL"
	CountryTG Country = "TG"
	CountryTK Country = "TK"
	CountryTO Country = "TO"
	CountryTT Country = "TT"
	CountryTN Country = "TN"
	CountryTR Country = "TR"
	CountryTM Country = "TM"
	CountryTC Country = "TC"
	CountryTV Country = "TV"
	CountryUG Country = "UG"
	CountryUA Country = "UA"
	CountryAE Country = "AE"
	CountryGB Country = "GB"
	CountryUS Country = "US"
	CountryUM Country = "UM"
	CountryUY Country = "UY"
	CountryUZ Country = "UZ"
	CountryVU Country = "VU"
	CountryVE Country = "VE"
	CountryVN Country = "VN"
	CountryVG Country = "VG"
	CountryVI Country = "VI"
	CountryWF Country = "WF"
	CountryEH Country = "EH"
	CountryYE Country = "YE"
	CountryZM Country = "ZM"
	CountryZW Country = "ZW"
	CountryAX Country = "AX"
	CountryBQ Country = "BQ"
	CountryCW Country = "CW"
	CountryGG Country = "GG"
	CountryIM Country = "IM"
	CountryJE Country = "JE"
	CountryME Country = "ME"
	CountryBL Country = "BL"
	CountryMF Country = "MF"
	CountryRS Country = "RS"
	CountrySX Country = "SX"
	CountrySS Country = "SS"
	CountryXK Country = "XK"
)

var knownCountries = map[Country]struct{}{
	CountryAF: {},
	CountryAL: {},
	CountryDZ: {},
	CountryAS: {},
	CountryAD: {},
	CountryAO: {},
	CountryAI: {},
	CountryAQ: {},
	CountryAG: {},
	CountryAR: {},
	CountryAM: {},
	CountryAW: {},
	CountryAU: {},
	CountryAT: {},
	CountryAZ: {},
	CountryBS: {},
	CountryBH: {},
	CountryBD: {},
	CountryBB: {},
	CountryBY: {},
	CountryBE: {},
	CountryBZ: {},
	CountryBJ: {},
	CountryBM: {},
	CountryBT: {},
	CountryBO: {},
	CountryBA: {},
	CountryBW: {},
	CountryBV: {},
	CountryBR: {},
	CountryIO: {},
	CountryBN: {},
	CountryBG: {},
	CountryBF: {},
	CountryBI: {},
	CountryKH: {},
	CountryCM: {},
	CountryCA: {},
	CountryCV: {},
	CountryKY: {},
	CountryCF: {},
	CountryTD: {},
	CountryCL: {},
	CountryCN: {},
	CountryCX: {},
	CountryCC: {},
	CountryCO: {},
	CountryKM: {},
	CountryCG: {},
	CountryCD: {},
	CountryCK: {},
	CountryCR: {},
	CountryCI: {},
	CountryHR: {},
	CountryCU: {},
	CountryCY: {},
	CountryCZ: {},
	CountryDK: {},
	CountryDJ: {},
	CountryDM: {},
	CountryDO: {},
	CountryEC: {},
	CountryEG: {},
	CountrySV: {},
	CountryGQ: {},
	CountryER: {},
	CountryEE: {},
	CountryET: {},
	CountryFK: {},
	CountryFO: {},
	CountryFJ: {},
	CountryFI: {},
	CountryFR: {},
	CountryGF: {},
	CountryPF: {},
	CountryTF: {},
	CountryGA: {},
	CountryGM: {},
	CountryGE: {},
	CountryDE: {},
	CountryGH: {},
	CountryGI: {},
	CountryGR: {},
	CountryGL: {},
	CountryGD: {},
	CountryGP: {},
	CountryGU: {},
	CountryGT: {},
	CountryGN: {},
	CountryGW: {},
	CountryGY: {},
	CountryHT: {},
	CountryHM: {},
	CountryVA: {},
	CountryHN: {},
	CountryHK: {},
	CountryHU: {},
	CountryIS: {},
	CountryIN: {},
	CountryID: {},
	CountryIR: {},
	CountryIQ: {},
	CountryIE: {},
	CountryIL: {},
	CountryIT: {},
	CountryJM: {},
	CountryJP: {},
	CountryJO: {},
	CountryKZ: {},
	CountryKE: {},
	CountryKI: {},
	CountryKP: {},
	CountryKR: {},
	CountryKW: {},
	CountryKG: {},
	CountryLA: {},
	CountryLV: {},
	CountryLB: {},
	CountryLS: {},
	CountryLR: {},
	CountryLY: {},
	CountryLI: {},
	CountryLT: {},
	CountryLU: {},
	CountryMO: {},
	CountryMG: {},
	CountryMW: {},
	CountryMY: {},
	CountryMV: {},
	CountryML: {},
	CountryMT: {},
	CountryMH: {},
	CountryMQ: {},
	CountryMR: {},
	CountryMU: {},
	CountryYT: {},
	CountryMX: {},
	CountryFM: {},
	CountryMD: {},
	CountryMC: {},
	CountryMN: {},
	CountryMS: {},
	CountryMA: {},
	CountryMZ: {},
	CountryMM: {},
	CountryNA: {},
	CountryNR: {},
	CountryNP: {},
	CountryNL: {},
	CountryNC: {},
	CountryNZ: {},
	CountryNI: {},
	CountryNE: {},
	CountryNG: {},
	CountryNU: {},
	CountryNF: {},
	CountryMK: {},
	CountryMP: {},
	CountryNO: {},
	CountryOM: {},
	CountryPK: {},
	CountryPW: {},
	CountryPS: {},
	CountryPA: {},
	CountryPG: {},
	CountryPY: {},
	CountryPE: {},
	CountryPH: {},
	CountryPN: {},
	CountryPL: {},
	CountryPT: {},
	CountryPR: {},
	CountryQA: {},
	CountryRE: {},
	CountryRO: {},
	CountryRU: {},
	CountryRW: {},
	CountrySH: {},
	CountryKN: {},
	CountryLC: {},
	CountryPM: {},
	CountryVC: {},
	CountryWS: {},
	CountrySM: {},
	CountryST: {},
	CountrySA: {},
	CountrySN: {},
	CountrySC: {},
	CountrySL: {},
	CountrySG: {},
	CountrySK: {},
	CountrySI: {},
	CountrySB: {},
	CountrySO: {},
	CountryZA: {},
	CountryGS: {},
	CountryES: {},
	CountryLK: {},
	CountrySD: {},
	CountrySR: {},
	CountrySJ: {},
	CountrySZ: {},
	CountrySE: {},
	CountryCH: {},
	CountrySY: {},
	CountryTW: {},
	CountryTJ: {},
	CountryTZ: {},
	CountryTH: {},
	CountryTL: {},
	CountryTG: {},
	CountryTK: {},
	CountryTO: {},
	CountryTT: {},
	CountryTN: {},
	CountryTR: {},
	CountryTM: {},
	CountryTC: {},
	CountryTV: {},
	CountryUG: {},
	CountryUA: {},
	CountryAE: {},
	CountryGB: {},
	CountryUS: {},
	CountryUM: {},
	CountryUY: {},
	CountryUZ: {},
	CountryVU: {},
	CountryVE: {},
	CountryVN: {},
	CountryVG: {},
	CountryVI: {},
	CountryWF: {},
	CountryEH: {},
	CountryYE: {},
	CountryZM: {},
	CountryZW: {},
	CountryAX: {},
	CountryBQ: {},
	CountryCW: {},
	CountryGG: {},
	CountryIM: {},
	CountryJE: {},
	CountryME: {},
	CountryBL: {},
	CountryMF: {},
	CountryRS: {},
	CountrySX: {},
	CountrySS: {},
	CountryXK: {},
}

// ParseCountry validates a country code. Codes are case-sensitive upper case.
func ParseCountry(val string) (Country, error) {
	c := Country(val)
	if !c.IsKnown() {
		return "", unknownEnum("Country", val)
	}
	return c, nil
}

// IsKnown reports whether c is in the closed set of country codes.
func (c Country) IsKnown() bool {
	_, ok := knownCountries[c]
	return ok
}

func (c Country) String() string { return string(c) }
