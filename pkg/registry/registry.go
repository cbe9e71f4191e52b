package registry

import (
	"github.com/stephenlacy/unrealmodding/pkg/archive"
	"github.com/stephenlacy/unrealmodding/pkg/names"
	"github.com/stephenlacy/unrealmodding/pkg/uversion"
)

// Kind discriminates record types. The enclosing container reads the
// discriminant ahead of the record body and dispatches here.
type Kind uint8

const (
	KindPackageData Kind = iota
	KindCustomVersion
	KindMD5Hash
	KindAssetIdentifier
)

func (k Kind) String() string {
	switch k {
	case KindPackageData:
		return "PackageData"
	case KindCustomVersion:
		return "CustomVersion"
	case KindMD5Hash:
		return "MD5Hash"
	case KindAssetIdentifier:
		return "AssetIdentifier"
	default:
		return "Kind(?)"
	}
}

// Record is any decodable registry record. The set of implementations is
// closed: dispatch is by exhaustive switch on Kind, so adding a record type
// means extending DecodeRecord and EncodeRecord by hand.
type Record interface {
	Kind() Kind
}

func (PackageData) Kind() Kind     { return KindPackageData }
func (CustomVersion) Kind() Kind   { return KindCustomVersion }
func (MD5Hash) Kind() Kind         { return KindMD5Hash }
func (AssetIdentifier) Kind() Kind { return KindAssetIdentifier }

// DecodeRecord decodes one record of the given kind. An unknown kind is a
// FormatError at the current offset.
func DecodeRecord(k Kind, r *archive.Reader, ctx *uversion.Context, tbl *names.Table) (Record, error) {
	switch k {
	case KindPackageData:
		rec, err := DecodePackageData(r, ctx, tbl)
		if err != nil {
			return nil, err
		}
		return rec, nil
	case KindCustomVersion:
		rec, err := DecodeCustomVersion(r)
		if err != nil {
			return nil, err
		}
		return rec, nil
	case KindMD5Hash:
		rec, err := DecodeMD5Hash(r)
		if err != nil {
			return nil, err
		}
		return rec, nil
	case KindAssetIdentifier:
		rec, err := DecodeAssetIdentifier(r, ctx, tbl)
		if err != nil {
			return nil, err
		}
		return rec, nil
	default:
		return nil, &archive.FormatError{Offset: r.Offset(), Msg: "unknown record kind " + k.String()}
	}
}

// EncodeRecord encodes one record under the given context.
func EncodeRecord(rec Record, w *archive.Writer, ctx *uversion.Context) error {
	switch rec := rec.(type) {
	case PackageData:
		return rec.Encode(w, ctx)
	case CustomVersion:
		return rec.Encode(w)
	case MD5Hash:
		return rec.Encode(w)
	case AssetIdentifier:
		return rec.Encode(w, ctx)
	default:
		return &archive.FormatError{Offset: w.Offset(), Msg: "unknown record kind " + rec.Kind().String()}
	}
}
