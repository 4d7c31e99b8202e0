package common

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PrintSimpleList はシンプルな箇条書きリストを表示
func PrintSimpleList(output ListOutput) {
	// タイトル表示
	fmt.Printf("%s:\n", output.Title)

	// アイテムがない場合
	if len(output.Items) == 0 {
		fmt.Printf("該当する%sはありませんでした\n", output.ResourceName)
		return
	}

	// 各アイテムを表示
	for _, item := range output.Items {
		fmt.Printf("  - %s\n", item)
	}

	// 合計数表示
	if output.ShowCount {
		fmt.Printf("\n合計: %d個の%s\n", len(output.Items), output.ResourceName)
	}
}

// PrintStatusList はステータス付きリストを表示
func PrintStatusList(title string, items []ListItem, resourceName string) {
	fmt.Printf("%s: (全%d件)\n", title, len(items))

	if len(items) == 0 {
		fmt.Printf("%sが見つかりませんでした\n", resourceName)
		return
	}

	for i, item := range items {
		if item.Status != "" {
			fmt.Printf("  %3d. %s [%s]\n", i+1, item.Name, item.Status)
		} else {
			fmt.Printf("  %3d. %s\n", i+1, item.Name)
		}
	}
}

// PrintTable はテーブル形式でデータを表示する
// 列幅は表示幅（全角文字を2桁と数える）で揃える
func PrintTable(title string, columns []TableColumn, data [][]string) {
	if title != "" {
		fmt.Printf("\n%s:\n", title)
	}

	// 各列の最大表示幅を計算（ヘッダーとデータの中で最大値を取得）
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = runewidth.StringWidth(col.Header)
	}
	for _, row := range data {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := runewidth.StringWidth(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}

	// ヘッダー表示
	for i, col := range columns {
		fmt.Printf("%s ", runewidth.FillRight(col.Header, colWidths[i]))
	}
	fmt.Println()

	// 区切り線
	for i := range columns {
		fmt.Printf("%s ", strings.Repeat("-", colWidths[i]))
	}
	fmt.Println()

	// データ行
	for _, row := range data {
		for i, cell := range row {
			if i < len(columns) {
				fmt.Printf("%s ", runewidth.FillRight(cell, colWidths[i]))
			}
		}
		fmt.Println()
	}
}
