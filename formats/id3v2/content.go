// SPDX-License-Identifier: EPL-2.0

package id3v2

import (
	"time"

	"github.com/ik5/mp3parser/internal/byteview"
	"github.com/ik5/mp3parser/utils"
)

// Content is the decoded body of a frame. The concrete type depends on the
// frame ID:
//
//	T***        *TextContent
//	TXXX        *UserTextContent
//	W***        *URLContent
//	WXXX        *UserURLContent
//	COMM, USLT  *CommentContent
//	UFID        *UniqueFileIDContent
//	IPLS        *InvolvedPeopleContent
//	USER        *TermsOfUseContent
//	PRIV        *PrivateContent
//	PCNT        *PlayCounterContent
//	POPM        *PopularimeterContent
//	APIC        *PictureContent
//	CHAP        *ChapterContent
//
// Byte slice fields alias the buffer the frame was read from.
type Content interface {
	content()
}

// TextContent is a text information frame.
type TextContent struct {
	Encoding utils.Encoding
	Value    string
}

// UserTextContent is a TXXX frame.
type UserTextContent struct {
	Encoding    utils.Encoding
	Description string
	Value       string
}

// URLContent is a URL link frame. URLs are always ISO-8859-1.
type URLContent struct {
	URL string
}

// UserURLContent is a WXXX frame. Encoding applies to the description only.
type UserURLContent struct {
	Encoding    utils.Encoding
	Description string
	URL         string
}

// CommentContent is a COMM or USLT frame.
type CommentContent struct {
	Encoding    utils.Encoding
	Language    string
	Description string
	Text        string
}

// UniqueFileIDContent is a UFID frame.
type UniqueFileIDContent struct {
	OwnerIdentifier string
	Identifier      []byte
}

// PrivateContent is a PRIV frame.
type PrivateContent struct {
	OwnerIdentifier string
	Data            []byte
}

// PlayCounterContent is a PCNT frame. Counters wider than 32 bits are not
// supported.
type PlayCounterContent struct {
	Counter uint32
}

// PopularimeterContent is a POPM frame. Counters wider than 32 bits are
// not supported.
type PopularimeterContent struct {
	Email   string
	Rating  byte
	Counter uint32
}

// PictureContent is an APIC frame.
type PictureContent struct {
	Encoding    utils.Encoding
	MIMEType    string
	PictureType PictureType
	Description string
	Data        []byte
}

// InvolvedPeopleContent is an IPLS frame. Values alternate between an
// involvement and the person involved, but are kept as a flat list.
type InvolvedPeopleContent struct {
	Encoding utils.Encoding
	Values   []string
}

// TermsOfUseContent is a USER frame.
type TermsOfUseContent struct {
	Encoding utils.Encoding
	Language string
	Text     string
}

// ChapterContent is a CHAP frame. Times are in milliseconds and offsets in
// bytes from the start of the file.
type ChapterContent struct {
	ID          string
	StartTime   uint32
	EndTime     uint32
	StartOffset uint32
	EndOffset   uint32
	Frames      []Frame
}

func (*TextContent) content()           {}
func (*UserTextContent) content()       {}
func (*URLContent) content()            {}
func (*UserURLContent) content()        {}
func (*CommentContent) content()        {}
func (*UniqueFileIDContent) content()   {}
func (*PrivateContent) content()        {}
func (*PlayCounterContent) content()    {}
func (*PopularimeterContent) content()  {}
func (*PictureContent) content()        {}
func (*InvolvedPeopleContent) content() {}
func (*TermsOfUseContent) content()     {}
func (*ChapterContent) content()        {}

// Start is StartTime as a duration.
func (c *ChapterContent) Start() time.Duration {
	return time.Duration(c.StartTime) * time.Millisecond
}

// End is EndTime as a duration.
func (c *ChapterContent) End() time.Duration {
	return time.Duration(c.EndTime) * time.Millisecond
}

// The readers below get the content range [offset, offset+length), which
// the caller has checked lies within v. None of them reads past it.

func readText(v byteview.View, offset, length int) *TextContent {
	enc := utils.Encoding(v.Uint8(offset))
	return &TextContent{
		Encoding: enc,
		Value:    utils.Decode(v, offset+1, length-1, enc),
	}
}

// splitDescription locates the terminator after the description that opens
// TXXX and WXXX content. The search window stops 4 bytes short of what the
// description could span.
func splitDescription(v byteview.View, offset, length int, enc utils.Encoding) (desc string, rest int, ok bool) {
	begin := offset + 1

	trm := utils.FindTerminator(v, begin, length-4, enc)
	if trm == utils.NotFound {
		return "", 0, false
	}

	return utils.Decode(v, begin, trm-begin, enc), trm + enc.TerminatorSize(), true
}

func readUserText(v byteview.View, offset, length int) *UserTextContent {
	c := &UserTextContent{Encoding: utils.Encoding(v.Uint8(offset))}
	if length < 2 {
		return c
	}

	desc, rest, ok := splitDescription(v, offset, length, c.Encoding)
	if !ok {
		return c
	}

	c.Description = desc
	c.Value = utils.Decode(v, rest, offset+length-rest, c.Encoding)

	return c
}

func readURL(v byteview.View, offset, length int) *URLContent {
	return &URLContent{URL: utils.DecodeISO(v, offset, length)}
}

func readUserURL(v byteview.View, offset, length int) *UserURLContent {
	c := &UserURLContent{Encoding: utils.Encoding(v.Uint8(offset))}
	if length < 2 {
		return c
	}

	desc, rest, ok := splitDescription(v, offset, length, c.Encoding)
	if !ok {
		return c
	}

	c.Description = desc
	c.URL = utils.DecodeISO(v, rest, offset+length-rest)

	return c
}

func readComment(v byteview.View, offset, length int) *CommentContent {
	c := &CommentContent{Encoding: utils.Encoding(v.Uint8(offset))}

	// encoding, language and a terminator
	if length < 5 {
		return c
	}

	c.Language, _ = utils.DecodeTerminated(v, offset+1, 3, utils.EncodingISO)

	begin := offset + 4
	trm := utils.FindTerminator(v, begin, length-4, c.Encoding)
	if trm == utils.NotFound {
		return c
	}

	c.Description = utils.Decode(v, begin, trm-begin, c.Encoding)
	rest := trm + c.Encoding.TerminatorSize()
	c.Text = utils.Decode(v, rest, offset+length-rest, c.Encoding)

	return c
}

// readOwnedData splits content made of an ISO-8859-1 owner identifier, its
// terminator and binary data.
func readOwnedData(v byteview.View, offset, length int) (string, []byte) {
	owner, n := utils.DecodeTerminated(v, offset, length, utils.EncodingISO)

	dataLength := length - n - 1
	if dataLength <= 0 {
		return owner, nil
	}

	return owner, v.Slice(offset+n+1, dataLength)
}

func readUniqueFileID(v byteview.View, offset, length int) *UniqueFileIDContent {
	owner, id := readOwnedData(v, offset, length)
	return &UniqueFileIDContent{OwnerIdentifier: owner, Identifier: id}
}

func readPrivate(v byteview.View, offset, length int) *PrivateContent {
	owner, data := readOwnedData(v, offset, length)
	return &PrivateContent{OwnerIdentifier: owner, Data: data}
}

// readInvolvedPeople reads consecutive terminated strings. The last one
// may run to the end of the content without a terminator.
func readInvolvedPeople(v byteview.View, offset, length int) *InvolvedPeopleContent {
	c := &InvolvedPeopleContent{Encoding: utils.Encoding(v.Uint8(offset))}

	end := offset + length
	for pos := offset + 1; pos < end; {
		trm := utils.FindTerminator(v, pos, end-pos, c.Encoding)
		if trm == utils.NotFound {
			c.Values = append(c.Values, utils.Decode(v, pos, end-pos, c.Encoding))
			break
		}

		c.Values = append(c.Values, utils.Decode(v, pos, trm-pos, c.Encoding))
		pos = trm + c.Encoding.TerminatorSize()
	}

	return c
}

func readTermsOfUse(v byteview.View, offset, length int) *TermsOfUseContent {
	c := &TermsOfUseContent{Encoding: utils.Encoding(v.Uint8(offset))}
	if length < 5 {
		return c
	}

	c.Language, _ = utils.DecodeTerminated(v, offset+1, 3, utils.EncodingISO)
	c.Text = utils.Decode(v, offset+4, length-4, c.Encoding)

	return c
}

func readPlayCounter(v byteview.View, offset, length int) *PlayCounterContent {
	c := &PlayCounterContent{}
	if length < 4 {
		return c
	}

	c.Counter = v.Uint32(offset)

	return c
}

func readPopularimeter(v byteview.View, offset, length int) *PopularimeterContent {
	c := &PopularimeterContent{}

	var n int
	c.Email, n = utils.DecodeTerminated(v, offset, length, utils.EncodingISO)

	// terminator, rating and counter
	if length-n < 6 {
		return c
	}

	c.Rating = v.Uint8(offset + n + 1)
	c.Counter = v.Uint32(offset + n + 2)

	return c
}

func readPicture(v byteview.View, offset, length int) *PictureContent {
	c := &PictureContent{Encoding: utils.Encoding(v.Uint8(offset))}

	// encoding, MIME type terminator, picture type and description terminator
	if length < 4 {
		return c
	}

	end := offset + length

	var n int
	c.MIMEType, n = utils.DecodeTerminated(v, offset+1, length-1, utils.EncodingISO)

	pos := offset + 1 + n + 1
	if pos >= end {
		return c
	}

	c.PictureType = PictureType(v.Uint8(pos))
	pos++

	c.Description, n = utils.DecodeTerminated(v, pos, end-pos, c.Encoding)
	pos += n + c.Encoding.TerminatorSize()
	if pos < end {
		c.Data = v.Slice(pos, end-pos)
	}

	return c
}

// chapterFieldsSize covers the start/end time and start/end offset words.
const chapterFieldsSize = 16

func readChapter(v byteview.View, offset, length, depth int) *ChapterContent {
	c := &ChapterContent{}
	end := offset + length

	var n int
	c.ID, n = utils.DecodeTerminated(v, offset, length, utils.EncodingISO)

	pos := offset + n + 1
	if end-pos < chapterFieldsSize {
		return c
	}

	c.StartTime = v.Uint32(pos)
	c.EndTime = v.Uint32(pos + 4)
	c.StartOffset = v.Uint32(pos + 8)
	c.EndOffset = v.Uint32(pos + 12)
	pos += chapterFieldsSize

	if depth >= MaxChapterDepth {
		return c
	}

	// Sub-frames may not reach past the chapter.
	sub := v[:end]

	c.Frames = []Frame{}
	for pos < end {
		frm, err := readFrame(sub, pos, depth+1)
		if err != nil {
			break
		}

		c.Frames = append(c.Frames, *frm)
		pos += frm.ByteLength()
	}

	return c
}
