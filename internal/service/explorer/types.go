package explorer

// RegionSummary は1つのエクスプローラーリージョンのプレビュー結果
type RegionSummary struct {
	Region string
	Stacks []string // アクティブなCloudFormationスタック名
	Err    error    // リージョン単位の取得エラー（他のリージョンの処理は継続する）
}
