package extractor

// assignZones partitions tokens into per-field buckets by bounding-box
// center containment. Each zone filters the full token list on its own:
// a token whose center falls inside two overlapping regions is assigned
// to both, and a token outside every region is dropped. Buckets keep the
// input token order; reading order is restored later by line
// reconstruction.
func assignZones(tokens []Token, cal Calibration) map[Field][]Token {
	zones := make(map[Field][]Token, len(cal))
	for field, region := range cal {
		var bucket []Token
		for _, tok := range tokens {
			if region.Contains(tok.BBox.CenterX(), tok.BBox.CenterY()) {
				bucket = append(bucket, tok)
			}
		}
		zones[field] = bucket
	}
	return zones
}
