// Package seed provides the canonical sample entries used to populate a
// journal for demos and manual testing.
package seed

import (
	"github.com/d-matsui/kokolog/pkg/entry"
)

// Drafts returns the sample drafts in insertion order. The store assigns
// ids and a shared timestamp when they are inserted.
func Drafts() []entry.Draft {
	return []entry.Draft{
		{
			Situation:   "上司からのメールで急な会議を要求された",
			AutoThought: "またダメ出しされるんだろう。自分の仕事は評価されていない",
			BeforeMoods: entry.Moods{
				{Name: "不安", Level: 4},
				{Name: "イライラ", Level: 3},
			},
			AfterMoods: entry.Moods{
				{Name: "不安", Level: 2},
				{Name: "イライラ", Level: 1},
			},
			Evidence:        "前回の会議で指摘されたことがある、最近忙しくてミスが増えている",
			CounterEvidence: "過去にも褒められたことがある、今回は緊急性の高い案件かもしれない",
			NewThought:      "会議の目的を確認してから判断しよう。必ずしも批判とは限らない",
			IsFavorite:      false,
		},
		{
			Situation:   "友人からのLINEの返信が遅い",
			AutoThought: "嫌われているのかもしれない。何か気に障ることをしたのかな",
			BeforeMoods: entry.Moods{
				{Name: "不安", Level: 5},
				{Name: "ゆううつ", Level: 3},
			},
			AfterMoods: entry.Moods{
				{Name: "不安", Level: 2},
				{Name: "ゆううつ", Level: 1},
			},
			Evidence:        "いつもよりレスポンスが遅い、絵文字が少ない",
			CounterEvidence: "友人も忙しい時期、体調不良かもしれない、普段は優しい人",
			NewThought:      "相手にも事情があるかもしれない。心配なら直接聞いてみよう",
			IsFavorite:      true,
		},
		{
			Situation:   "プレゼンテーションで質問に答えられなかった",
			AutoThought: "準備不足だった。みんなに能力不足だと思われた",
			BeforeMoods: entry.Moods{
				{Name: "焦り", Level: 5},
				{Name: "虚しさ", Level: 4},
			},
			AfterMoods: entry.Moods{
				{Name: "焦り", Level: 2},
				{Name: "虚しさ", Level: 2},
			},
			Evidence:        "その場で答えられなかった、準備時間が足りなかった",
			CounterEvidence: "他の質問には答えられた、内容自体は評価された、次回に活かせる",
			NewThought:      "完璧でなくても価値のあるプレゼンだった。学習の機会として捉えよう",
			IsFavorite:      false,
		},
		{
			Situation:   "SNSで他人の成功投稿を見た",
			AutoThought: "自分だけが取り残されている。努力が足りないのかもしれない",
			BeforeMoods: entry.Moods{
				{Name: "ゆううつ", Level: 4},
				{Name: "無気力", Level: 3},
			},
			AfterMoods: entry.Moods{
				{Name: "ゆううつ", Level: 2},
				{Name: "無気力", Level: 1},
			},
			Evidence:        "周りが充実して見える、自分の進歩が感じられない",
			CounterEvidence: "SNSは良い面だけ見せがち、自分なりのペースで成長している、比較する必要はない",
			NewThought:      "他人と比較せず、自分の成長に焦点を当てよう。小さな進歩も大切",
			IsFavorite:      false,
		},
		{
			Situation:   "電車で席を譲らなかった時のこと",
			AutoThought: "周りの人に冷たい人だと思われたかもしれない",
			BeforeMoods: entry.Moods{
				{Name: "虚しさ", Level: 3},
				{Name: "不安", Level: 2},
			},
			AfterMoods: entry.Moods{
				{Name: "虚しさ", Level: 1},
				{Name: "不安", Level: 1},
			},
			Evidence:        "疲れていて座っていたかった、他にも座っている人がいた",
			CounterEvidence: "体調が悪かったのは事実、誰も批判していない、次回は譲ればよい",
			NewThought:      "その時の状況を考慮すれば仕方なかった。次回気をつければよい",
			IsFavorite:      true,
		},
	}
}
