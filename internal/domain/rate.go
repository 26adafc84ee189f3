package domain

// RateScale is the implicit denominator of every stored rate: 100 means 1:1.
const RateScale int64 = 100

type RatePair struct {
	From AssetHandle
	To   AssetHandle
}

func (p RatePair) Reversed() RatePair {
	return RatePair{
		From: p.To,
		To:   p.From,
	}
}

type RateEntry struct {
	From AssetHandle
	To   AssetHandle
	Rate int64
}

func (e RateEntry) Pair() RatePair {
	return RatePair{From: e.From, To: e.To}
}

// SwappablePairs holds index-aligned columns, one row per directed pair.
type SwappablePairs struct {
	From  []AssetHandle
	To    []AssetHandle
	Rates []int64
}

func (p SwappablePairs) Len() int {
	return len(p.From)
}
