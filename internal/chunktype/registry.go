package chunktype

// Info describes a registered chunk type. The APNG extension types are
// registered but carry the private bit.
type Info struct {
	Type        ChunkType `json:"type"`
	Critical    bool      `json:"critical"`
	Public      bool      `json:"public"`
	Description string    `json:"description"`
}

// Registered chunk types.
var (
	IHDR = MustParse("IHDR")
	PLTE = MustParse("PLTE")
	IDAT = MustParse("IDAT")
	IEND = MustParse("IEND")
)

var registry = []Info{
	{IHDR, true, true, "image header"},
	{PLTE, true, true, "palette"},
	{IDAT, true, true, "image data"},
	{IEND, true, true, "image trailer"},
	{MustParse("tRNS"), false, true, "transparency"},
	{MustParse("cHRM"), false, true, "primary chromaticities and white point"},
	{MustParse("gAMA"), false, true, "image gamma"},
	{MustParse("iCCP"), false, true, "embedded ICC profile"},
	{MustParse("sBIT"), false, true, "significant bits"},
	{MustParse("sRGB"), false, true, "standard RGB colour space"},
	{MustParse("cICP"), false, true, "coding-independent code points"},
	{MustParse("mDCV"), false, true, "mastering display colour volume"},
	{MustParse("cLLI"), false, true, "content light level information"},
	{MustParse("tEXt"), false, true, "textual data"},
	{MustParse("zTXt"), false, true, "compressed textual data"},
	{MustParse("iTXt"), false, true, "international textual data"},
	{MustParse("bKGD"), false, true, "background colour"},
	{MustParse("hIST"), false, true, "image histogram"},
	{MustParse("pHYs"), false, true, "physical pixel dimensions"},
	{MustParse("sPLT"), false, true, "suggested palette"},
	{MustParse("eXIf"), false, true, "exchangeable image file profile"},
	{MustParse("tIME"), false, true, "image last-modification time"},
	{MustParse("acTL"), false, false, "animation control"},
	{MustParse("fcTL"), false, false, "frame control"},
	{MustParse("fdAT"), false, false, "frame data"},
}

var registryIndex = func() map[ChunkType]int {
	idx := make(map[ChunkType]int, len(registry))
	for i, info := range registry {
		idx[info.Type] = i
	}
	return idx
}()

// Lookup returns the registry entry for c. Matching is exact, so case
// variants of a registered name are not found.
func Lookup(c ChunkType) (Info, bool) {
	i, ok := registryIndex[c]
	if !ok {
		return Info{}, false
	}
	return registry[i], true
}

// Known returns a copy of the registry in table order.
func Known() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}
