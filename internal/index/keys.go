package index

import "encoding/binary"

// key = invTime(8) + 0x00 + id, so a forward cursor walk comes out
// newest first without a sort step.
func makeDateKey(unixNano int64, id string) []byte {
	buf := make([]byte, 0, 8+1+len(id))
	tmp := make([]byte, 8)
	binary.BigEndian.PutUint64(tmp, ^uint64(unixNano))
	buf = append(buf, tmp...)
	buf = append(buf, 0x00)
	buf = append(buf, id...)
	return buf
}

func idFromDateKey(k []byte) string {
	if len(k) < 8+2 || k[8] != 0x00 {
		return ""
	}
	return string(k[9:])
}
