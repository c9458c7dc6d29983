package gsf

import (
	"io"
	"testing"
)

func BenchmarkReaderWalk(b *testing.B) {
	// Build a file of framed comment records once, walk it repeatedly.
	comment := frame(TypeComment, (&wire{}).u32(1).u32(2).u32(5).str("abcde\x00\x00\x00").buf, false)
	records := make([][]byte, 0, 1024)
	records = append(records, frame(TypeHeader, []byte("GSF-v03.08\x00\x00"), false))
	for i := 0; i < 1023; i++ {
		records = append(records, comment)
	}

	path := writeGsfFile(b, records...)

	b.SetBytes(int64(len(comment)) * 1023)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		reader, err := Open(path)
		if err != nil {
			b.Fatal(err)
		}
		for {
			buf, err := reader.NextBuffer()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
			if buf.Type() == TypeComment {
				if _, err := DecodeComment(buf); err != nil {
					b.Fatal(err)
				}
			}
		}
		reader.Close()
	}
}
