// Package vision holds the interchangeable OCR engines. Each engine takes
// image bytes and returns whatever raw text it produced; structuring that
// text into a ticket candidate is the caller's job.
package vision

import "context"

// Recognizer is one OCR engine.
type Recognizer interface {
	// Name identifies the engine ("gemini", "openai", "tesseract").
	Name() string
	// Recognize runs the engine over a JPEG/PNG image and returns raw text.
	Recognize(ctx context.Context, image []byte) (string, error)
}

// ticketPrompt asks a vision model for the ticket fields as bare JSON. Both
// cloud engines share it; the local engine returns plain recognized text
// instead.
const ticketPrompt = `Bạn là chuyên gia nhận diện vé số Việt Nam. Hãy phân tích ảnh vé số này và trích xuất thông tin:

1. SỐ VÉ (QUAN TRỌNG NHẤT): dãy số 6 chữ số trên vé, thường in lớn và nổi bật.
2. NGÀY MỞ THƯỞNG: định dạng DD/MM/YYYY hoặc DD-MM-YYYY.
3. TỈNH/ĐÀI: đài xổ số (ví dụ: Đồng Tháp, TP.HCM, Bình Dương, Cần Thơ).

Trả lời theo định dạng JSON sau, KHÔNG thêm markdown code block:
{
    "numbers": ["123456"],
    "date": "DD-MM-YYYY",
    "province": "tên-tỉnh-viết-thường-có-dấu-gạch-ngang",
    "rawText": "toàn bộ text đọc được trên vé"
}

Ví dụ về province slug: TP Hồ Chí Minh -> "tphcm", Đồng Tháp -> "dong-thap",
Cần Thơ -> "can-tho", Bình Dương -> "binh-duong", An Giang -> "an-giang",
Vĩnh Long -> "vinh-long", Bến Tre -> "ben-tre", Cà Mau -> "ca-mau",
Đồng Nai -> "dong-nai", Sóc Trăng -> "soc-trang", Tây Ninh -> "tay-ninh",
Bình Thuận -> "binh-thuan", Kiên Giang -> "kien-giang",
Đà Lạt/Lâm Đồng -> "da-lat", Bình Phước -> "binh-phuoc",
Hậu Giang -> "hau-giang", Long An -> "long-an", Tiền Giang -> "tien-giang",
Vũng Tàu -> "vung-tau", Bạc Liêu -> "bac-lieu", Trà Vinh -> "tra-vinh",
Miền Bắc/Hà Nội -> "mien-bac".

Nếu không tìm thấy thông tin nào, để mảng/chuỗi rỗng.`
