package services

import "github.com/kien39/mil-mang/app/models"

// OpenQuestionStart is the first question id excluded from scoring. The two
// trailing open-ended questions (ids 18 and 19) collect free text only.
const OpenQuestionStart = 18

// SurveySections is the fixed questionnaire. Question ids are global across
// sections and the answer point values drive the weighted score; a higher
// score means a more settled state of mind.
var SurveySections = []models.SurveySection{
	{
		Title: "II. TÌNH TRẠNG SỨC KHỎE TINH THẦN",
		Questions: []models.SurveyQuestion{
			{
				ID:       0,
				Question: "Trong thời gian gần đây, tâm trạng chung của đồng chí:",
				Answers: []models.SurveyAnswer{
					{Text: "Rất tốt", Score: 5},
					{Text: "Tốt", Score: 4},
					{Text: "Bình thường", Score: 3},
					{Text: "Căng thẳng", Score: 2},
					{Text: "Rất căng thẳng", Score: 1},
				},
			},
			{
				ID:       1,
				Question: "Đồng chí có thường xuyên cảm thấy mệt mỏi, chán nản không?",
				Answers: []models.SurveyAnswer{
					{Text: "Không", Score: 4},
					{Text: "Ít", Score: 3},
					{Text: "Thỉnh thoảng", Score: 2},
					{Text: "Thường xuyên", Score: 1},
				},
			},
			{
				ID:       2,
				Question: "Giấc ngủ của đồng chí dạo gần đây:",
				Answers: []models.SurveyAnswer{
					{Text: "Ngủ tốt", Score: 4},
					{Text: "Khó ngủ nhẹ", Score: 3},
					{Text: "Hay tỉnh giấc", Score: 2},
					{Text: "Mất ngủ kéo dài", Score: 1},
				},
			},
			{
				ID:       3,
				Question: "Khi gặp áp lực tinh thần, đồng chí:",
				Answers: []models.SurveyAnswer{
					{Text: "Có người chia sẻ", Score: 4},
					{Text: "Chỉ chia sẻ một phần", Score: 3},
					{Text: "Khó chia sẻ", Score: 2},
					{Text: "Không chia sẻ với ai", Score: 1},
				},
			},
		},
	},
	{
		Title: "III. ĐỜI SỐNG – SINH HOẠT – HUẤN LUYỆN",
		Questions: []models.SurveyQuestion{
			{
				ID:       4,
				Question: "Đồng chí đánh giá môi trường sinh hoạt, ăn ở tại đơn vị:",
				Answers: []models.SurveyAnswer{
					{Text: "Rất tốt", Score: 4},
					{Text: "Tốt", Score: 3},
					{Text: "Tạm ổn", Score: 2},
					{Text: "Chưa phù hợp", Score: 1},
				},
			},
			{
				ID:       5,
				Question: "Quan hệ của đồng chí với đồng đội:",
				Answers: []models.SurveyAnswer{
					{Text: "Hòa đồng, đoàn kết", Score: 4},
					{Text: "Bình thường", Score: 3},
					{Text: "Có va chạm nhỏ", Score: 2},
					{Text: "Khó hòa nhập", Score: 1},
				},
			},
			{
				ID:       6,
				Question: "Khối lượng công việc, huấn luyện hiện nay:",
				Answers: []models.SurveyAnswer{
					{Text: "Phù hợp", Score: 4},
					{Text: "Hơi nặng", Score: 3},
					{Text: "Nặng", Score: 2},
					{Text: "Quá sức", Score: 1},
				},
			},
			{
				ID:       7,
				Question: "Đồng chí có cảm thấy ý kiến của mình được lắng nghe trong đơn vị không?",
				Answers: []models.SurveyAnswer{
					{Text: "Có", Score: 4},
					{Text: "Thỉnh thoảng", Score: 3},
					{Text: "Ít", Score: 2},
					{Text: "Không", Score: 1},
				},
			},
			{
				ID:       8,
				Question: "Đồng chí có gặp vướng mắc gì trong sinh hoạt, chế độ, tiêu chuẩn không?",
				Answers: []models.SurveyAnswer{
					{Text: "Không", Score: 5},
					{Text: "Có", Score: 1},
				},
				HasNote: true,
			},
		},
	},
	{
		Title: "IV. HOÀN CẢNH GIA ĐÌNH – CÁ NHÂN",
		Questions: []models.SurveyQuestion{
			{
				ID:       9,
				Question: "Hiện tại, đồng chí có đang lo lắng về vấn đề gia đình không?",
				Answers: []models.SurveyAnswer{
					{Text: "Không", Score: 4},
					{Text: "Ít", Score: 3},
					{Text: "Có", Score: 2},
					{Text: "Rất nhiều", Score: 1},
				},
			},
			{
				ID:       10,
				Question: "Việc nhớ nhà, lo cho gia đình có ảnh hưởng đến tâm lý, công tác không?",
				Answers: []models.SurveyAnswer{
					{Text: "Không", Score: 4},
					{Text: "Ít", Score: 3},
					{Text: "Có", Score: 2},
					{Text: "Ảnh hưởng nhiều", Score: 1},
				},
			},
			{
				ID:       11,
				Question: "Hoàn cảnh gia đình hiện nay:",
				Answers: []models.SurveyAnswer{
					{Text: "Ổn định", Score: 3},
					{Text: "Có khó khăn tạm thời", Score: 2},
					{Text: "Có khó khăn kéo dài", Score: 1},
				},
			},
			{
				ID:       12,
				Question: "Khi gia đình gặp khó khăn, đồng chí:",
				Answers: []models.SurveyAnswer{
					{Text: "Có người hỗ trợ", Score: 3},
					{Text: "Tự xoay xở", Score: 2},
					{Text: "Cảm thấy áp lực, bế tắc", Score: 1},
				},
			},
		},
	},
	{
		Title: "V. TÌNH HÌNH TÀI CHÍNH – NỢ NẦN",
		Questions: []models.SurveyQuestion{
			{
				ID:       13,
				Question: "Tình hình tài chính cá nhân hiện nay:",
				Answers: []models.SurveyAnswer{
					{Text: "Ổn định", Score: 3},
					{Text: "Tạm đủ", Score: 2},
					{Text: "Khó khăn", Score: 1},
				},
			},
			{
				ID:       14,
				Question: "Đồng chí hiện có nợ không?",
				Answers: []models.SurveyAnswer{
					{Text: "Không có", Score: 3},
					{Text: "Có nợ nhỏ", Score: 2},
					{Text: "Có nợ kéo dài", Score: 1},
				},
			},
			{
				ID:       15,
				Question: "Áp lực tài chính có ảnh hưởng đến tư tưởng, công tác không?",
				Answers: []models.SurveyAnswer{
					{Text: "Không", Score: 4},
					{Text: "Ít", Score: 3},
					{Text: "Có", Score: 2},
					{Text: "Ảnh hưởng nhiều", Score: 1},
				},
			},
		},
	},
	{
		Title: "VI. QUAN HỆ CÁ NHÂN – NGUYỆN VỌNG",
		Questions: []models.SurveyQuestion{
			{
				ID:       16,
				Question: "Đồng chí có vướng mắc trong quan hệ cá nhân (gia đình, tình cảm, xã hội) không?",
				Answers: []models.SurveyAnswer{
					{Text: "Không", Score: 4},
					{Text: "Ít", Score: 3},
					{Text: "Có", Score: 2},
					{Text: "Khó giải quyết", Score: 1},
				},
			},
			{
				ID:       17,
				Question: "Khi có vấn đề cá nhân, đồng chí mong muốn:",
				Answers: []models.SurveyAnswer{
					{Text: "Được trò chuyện riêng", Score: 4},
					{Text: "Được tư vấn, động viên", Score: 3},
					{Text: "Tự giải quyết", Score: 2},
					{Text: "Chưa sẵn sàng chia sẻ", Score: 1},
				},
			},
		},
	},
}
