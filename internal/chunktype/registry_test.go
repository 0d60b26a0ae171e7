package chunktype

import "testing"

func TestRegistryAgreesWithCaseBits(t *testing.T) {
	for _, info := range Known() {
		if !info.Type.IsValid() {
			t.Fatalf("%s: registered type is not valid", info.Type)
		}
		if info.Type.IsPublic() != info.Public {
			t.Fatalf("%s: public=%v but case bit says %v", info.Type, info.Public, info.Type.IsPublic())
		}
		if info.Type.IsCritical() != info.Critical {
			t.Fatalf("%s: critical=%v but case bit says %v", info.Type, info.Critical, info.Type.IsCritical())
		}
	}
}

func TestRegistryMarksAnimationTypesPrivate(t *testing.T) {
	for _, name := range []string{"acTL", "fcTL", "fdAT"} {
		info, ok := Lookup(MustParse(name))
		if !ok || info.Public {
			t.Fatalf("%s: expected registered private entry, got %+v ok=%v", name, info, ok)
		}
	}
	if info, _ := Lookup(IDAT); !info.Public {
		t.Fatalf("IDAT must be public")
	}
}

func TestLookup(t *testing.T) {
	info, ok := Lookup(IEND)
	if !ok || info.Description != "image trailer" {
		t.Fatalf("unexpected lookup: %+v ok=%v", info, ok)
	}
	if _, ok := Lookup(MustParse("iend")); ok {
		t.Fatalf("lookup must be case sensitive")
	}
	if _, ok := Lookup(MustParse("RuSt")); ok {
		t.Fatalf("unexpected registry hit")
	}
}

func TestKnownReturnsCopy(t *testing.T) {
	known := Known()
	known[0].Description = "changed"
	if info, _ := Lookup(IHDR); info.Description != "image header" {
		t.Fatalf("registry mutated through Known: %q", info.Description)
	}
}
