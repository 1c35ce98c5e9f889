package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
)

// Generates the SSE byte-broadcast match kernel behind the group scans:
//
//	go run asm.go -out ../match_amd64.s -stubs ../match_amd64.go
//
// The kernel compares all 16 metadata bytes of a group against one byte at
// once and returns the compare result as a bitmask.
func main() {
	TEXT("MatchByte", NOSPLIT, "func(c uint8, buffer []byte) (mask uint32, ok bool)")

	n := Load(Param("buffer").Len(), GP64())
	result := GP32()
	ok, err := ReturnIndex(1).Resolve()
	if err != nil {
		panic(err)
	}

	// Short buffers cannot hold a full group; report failure instead of
	// reading past the end.
	CMPQ(n, operand.Imm(16))
	JGE(operand.LabelRef("valid"))
	XORL(result, result)
	Store(result, ReturnIndex(0))
	MOVB(operand.Imm(0), ok.Addr)
	RET()

	Label("valid")
	c := Load(Param("c"), GP32())
	ptr := Load(Param("buffer").Base(), GP64())

	x0, x1, x2 := XMM(), XMM(), XMM()
	// Broadcast c to all 16 lanes: PSHUFB with an all-zero control mask.
	PXOR(x1, x1)
	MOVD(c, x0)
	PSHUFB(x1, x0)
	// MOVOU tolerates the unaligned loads a []byte can hand us.
	MOVOU(operand.Mem{Base: ptr}, x2)
	PCMPEQB(x2, x0)
	PMOVMSKB(x0, result)
	Store(result, ReturnIndex(0))
	MOVB(operand.Imm(1), ok.Addr)
	RET()

	Generate()
}
