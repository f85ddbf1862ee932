package advisor

import (
	"fmt"
	"strings"
)

const systemPrompt = `Kamu adalah konselor karier yang ramah untuk siswa SMA/SMK di Indonesia. Gunakan bahasa santai tapi sopan. Jangan menyebut tes ini tidak akurat dan jangan memberi diagnosis psikologis.`

func buildUserMessage(in Input) string {
	var b strings.Builder

	b.WriteString("Tes minat bakat seorang siswa tidak menemukan profil yang cocok di database kami.\n\n")
	if in.Grade != "" {
		fmt.Fprintf(&b, "Kelas: %s\n", in.Grade)
	}
	fmt.Fprintf(&b, "Tipe MBTI: %s\n", in.MBTI.Type)
	fmt.Fprintf(&b, "Kode RIASEC: %s\n", in.RIASEC.Code)

	b.WriteString("\nSkor MBTI per kutub:\n")
	for _, e := range in.MBTI.Scores {
		fmt.Fprintf(&b, "- %s: %d\n", e.Letter, e.Value)
	}

	b.WriteString("\nSkor RIASEC:\n")
	for _, e := range in.RIASEC.Scores {
		fmt.Fprintf(&b, "- %s: %d\n", e.Letter, e.Value)
	}
	fmt.Fprintf(&b, "Urutan RIASEC: %s\n", in.ranking())

	b.WriteString("\nTulis catatan singkat: ringkasan arti kombinasi ini, 3-5 jurusan kuliah yang layak dijelajahi, dan satu langkah nyata minggu ini.")

	return b.String()
}
