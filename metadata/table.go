package metadata

// DefaultTable returns the normalization constants for the 13 TeV
// four-lepton samples. Observed data samples carry no record: they are
// never normalized.
func DefaultTable() Table {
	return Table{
		// Higgs signal, m_H = 125 GeV
		"ggH125_ZZ4lep":  {CrossSection: 0.0060239, SumW: 27881776.6536, RedEff: 1.0, DSID: 345060},
		"VBFH125_ZZ4lep": {CrossSection: 0.0004633012, SumW: 3680490.83243, RedEff: 1.0, DSID: 344235},
		"WH125_ZZ4lep":   {CrossSection: 0.0003842, SumW: 149400.0, RedEff: 1.0, DSID: 341964},
		"ZH125_ZZ4lep":   {CrossSection: 0.0002437, SumW: 150000.0, RedEff: 1.0, DSID: 341947},

		// irreducible ZZ* background
		"llll": {CrossSection: 1.2578, SumW: 7538705.8077, RedEff: 1.0, DSID: 363490},

		// reducible Z and top backgrounds
		"Zee":       {CrossSection: 1950.5295, SumW: 150277594200.0, RedEff: 1.0, DSID: 361106},
		"Zmumu":     {CrossSection: 1950.6321, SumW: 147334691090.0, RedEff: 1.0, DSID: 361107},
		"ttbar_lep": {CrossSection: 452.693559, SumW: 49386600.0, RedEff: 0.9046384, DSID: 410000},
	}
}
